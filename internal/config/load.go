package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
// The names match what the deployment environment already exports.
var envBindings = map[string]string{
	"server.port":                 "PORT",
	"server.env":                  "NODE_ENV",
	"server.log_level":            "LOG_LEVEL",
	"database.host":               "DB_HOST",
	"database.port":               "DB_PORT",
	"database.username":           "DB_USERNAME",
	"database.password":           "DB_PASSWORD",
	"database.name":               "DB_NAME",
	"auth.jwt_secret":             "JWT_SECRET",
	"auth.token_lifetime_minutes": "JWT_LIFETIME_MINUTES",
}

// Load reads configuration from the environment (and a .env file when one
// exists), applies defaults, and validates the result.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is not an error; deployed environments set
	// variables directly.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "todo_db")
	v.SetDefault("auth.token_lifetime_minutes", 24*60)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
