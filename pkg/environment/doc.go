// Package environment names the environment the CLI runs in (development,
// staging, production) and carries it through context.Context.
//
// Parse turns a configured value such as "prod" into an Environment,
// WithContext and FromContext attach and read it, and LoggerExtractor
// exposes it to the logger as an "env" attribute:
//
//	ctx := environment.WithContext(ctx, environment.Parse(cfg.Env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "validated") // ... env=production
package environment
