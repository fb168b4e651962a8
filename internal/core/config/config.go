package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// AppConfig holds all runtime configuration, resolved from environment
// variables with an optional .env file underneath.
type AppConfig struct {
	// Environment is the runtime environment (development, production).
	Environment string `mapstructure:"APP_ENV"`
	// LogLevel is the logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// ServerPort is the port the HTTP server listens on.
	ServerPort int `mapstructure:"SERVER_PORT"`

	// Correios holds the carrier client configuration.
	Correios CorreiosConfig `mapstructure:",squash"`
}

// CorreiosConfig selects the carrier protocol variant and transport limits.
type CorreiosConfig struct {
	// AuthMode is the protocol variant: "none" or "handshake".
	AuthMode string `mapstructure:"CORREIOS_AUTH_MODE"`
	// TimeoutSeconds bounds each outbound carrier request.
	TimeoutSeconds int `mapstructure:"CORREIOS_TIMEOUT_SECONDS"`
}

// Load resolves configuration from a .env file in path (optional) and the
// process environment, applying defaults for anything unset.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("CORREIOS_AUTH_MODE", "none")
	v.SetDefault("CORREIOS_TIMEOUT_SECONDS", 30)

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// AutomaticEnv alone does not register keys for Unmarshal.
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "CORREIOS_AUTH_MODE", "CORREIOS_TIMEOUT_SECONDS"} {
		v.BindEnv(key)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if cfg.Correios.AuthMode != "none" && cfg.Correios.AuthMode != "handshake" {
		return nil, fmt.Errorf("invalid CORREIOS_AUTH_MODE: %s", cfg.Correios.AuthMode)
	}
	if cfg.Correios.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("CORREIOS_TIMEOUT_SECONDS must be positive")
	}

	return &cfg, nil
}
