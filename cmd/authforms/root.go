package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/pkg/config"
	"github.com/dmitrymomot/authforms/pkg/environment"
	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

const serviceName = "authforms"

// cliConfig is read from the process environment and an optional .env file.
type cliConfig struct {
	Env       string `env:"AUTHFORMS_ENV" envDefault:"development"`
	LogLevel  string `env:"AUTHFORMS_LOG_LEVEL"`
	LogFormat string `env:"AUTHFORMS_LOG_FORMAT"`
	Messages  string `env:"AUTHFORMS_MESSAGES"`
}

type runIDKey struct{}

// app holds what subcommands share within one execution.
type app struct {
	messages  string
	log       *slog.Logger
	validator *validator.Validator
}

// NewRootCmd creates the root command for the authforms CLI.
func NewRootCmd() *cobra.Command {
	a := &app{
		log:       slog.Default(),
		validator: validator.New(),
	}

	cmd := &cobra.Command{
		Use:   "authforms",
		Short: "Validate and format authentication form input",
		Long: `authforms validates login, registration and password recovery
form data, applies the phone and CPF input masks and checks single values
against the built-in patterns.

Configuration comes from AUTHFORMS_ENV, AUTHFORMS_LOG_LEVEL,
AUTHFORMS_LOG_FORMAT and AUTHFORMS_MESSAGES (or a .env file).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.messages, "messages", "", "YAML message catalog overriding the built-in messages")

	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newCheckCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	env := environment.Parse(cfg.Env)
	opts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("run_id", runIDKey{}),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	a.log = logger.New(opts...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = environment.WithContext(ctx, env)
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	cmd.SetContext(ctx)

	path := a.messages
	if path == "" {
		path = cfg.Messages
	}
	if path == "" {
		return nil
	}

	catalog, err := loadCatalog(path)
	if err != nil {
		return err
	}
	a.validator = validator.New(validator.WithCatalog(catalog))
	a.log.DebugContext(ctx, "message catalog loaded", slog.String("path", path))
	return nil
}

func loadCatalog(path string) (validator.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return validator.Catalog{}, fmt.Errorf("open message catalog: %w", err)
	}
	defer f.Close()

	catalog, err := validator.LoadCatalog(f)
	if err != nil {
		return validator.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}
