// Package config holds the application configuration, constructed once
// at startup and never mutated afterwards.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the token signing settings. The secret is the
// only required value; the expiry defaults to 48 hours.
type AuthConfig struct {
	Secret           string `mapstructure:"secret"             validate:"required,min=32"`
	TokenExpiryHours int    `mapstructure:"token_expiry_hours" validate:"required,gt=0"`
}
