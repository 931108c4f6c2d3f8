package config

import "fmt"

// Config holds all application configuration.
// It is constructed once at startup by Load and passed by reference
// into every component that needs it.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	Env      string `mapstructure:"env"       validate:"required,oneof=development production test"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"     validate:"required"`
}

// URL assembles a connection string suitable for the pgx stdlib driver.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Username, c.Password, c.Host, c.Port, c.Name)
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	// JWTSecret signs and verifies every issued token. Rotating it
	// invalidates all outstanding tokens; no revocation list is kept.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes bounds how long an issued token stays valid.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
