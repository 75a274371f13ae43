// Package config manages environment variables.
//
// It reads variables from the process environment (optionally loaded
// from a `.env` file), maps them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Env vars use the MASTERBLOG_ prefix and dot-notation nesting:
// MASTERBLOG_SERVER.PORT -> server.port -> Config.Server.Port.
// Every field carries a default, so the service starts with an empty
// environment.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env,
	// if one exists, before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags map env keys onto fields; `validate` tags are
// enforced with go-playground/validator after unmarshaling.
type Config struct {
	Primary Primary      `koanf:"primary" validate:"required"`
	Server  ServerConfig `koanf:"server" validate:"required"`
	Log     LogConfig    `koanf:"log" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch logger output format.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// LogConfig controls the zerolog global level.
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

// defaultConfig returns the configuration the service runs with when
// no environment is provided. Port 5002 is the API's fixed port; CORS
// is permissive by contract.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "5002",
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load builds the application configuration.
//
// Flow:
//  1. start from defaults
//  2. overlay MASTERBLOG_-prefixed env vars via koanf
//  3. validate the result
func Load() (*Config, error) {
	k := koanf.New(".")

	// Load environment variables into koanf. The mapping function
	// strips the prefix and lowercases, so MASTERBLOG_SERVER.PORT
	// becomes the koanf key "server.port".
	err := k.Load(env.Provider("MASTERBLOG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MASTERBLOG_"))
	}), nil)
	if err != nil {
		return nil, err
	}

	// Unmarshal on top of the defaults; only keys present in the
	// environment overwrite them.
	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in the production
// environment.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
