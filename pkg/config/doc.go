// Package config loads configuration structs from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for tag-driven parsing. Each configuration
// type is parsed once per process and cached by type name, guarded by a
// sync.Once so concurrent callers see the same value.
//
//	type CLIConfig struct {
//	    Env       string `env:"AUTHFORMS_ENV" envDefault:"development"`
//	    LogLevel  string `env:"AUTHFORMS_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"AUTHFORMS_LOG_FORMAT"`
//	    Messages  string `env:"AUTHFORMS_MESSAGES"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv reads explicit dotenv files (later files win). ResetCache and
// ForceReloadConfig discard cached values after the environment changes,
// which is mostly useful in tests.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded and ErrNilPointer; compare with errors.Is.
package config
