// Package logger builds the *slog.Logger used by the authforms CLI.
//
// New takes functional options selecting the output format (text or json),
// level, destination, static attributes and ContextExtractor callbacks that
// copy values from a context.Context into every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "authforms"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated",
//	    logger.Form("register"),
//	    logger.Valid(res.Valid),
//	    logger.FieldErrors(res.Errors),
//	)
//
// Records go to stderr by default so that stdout stays free for command
// output. Attribute helpers such as Error and FieldErrors return an empty
// Attr for nil or empty input, which slog drops, so callers need no nil
// checks.
package logger
