package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the OJT hours tracker
type Config struct {
	Database    DatabaseConfig
	Auth        AuthConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `env:"OJT_DB_DIR"`
	Filename     string        `env:"OJT_DB_FILENAME"`
	QueryTimeout time.Duration `env:"OJT_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"OJT_DB_WRITE_TIMEOUT"`
}

// AuthConfig holds identity provider configuration
type AuthConfig struct {
	ClientID     string `env:"OJT_AUTH_CLIENT_ID"`
	ClientSecret string `env:"OJT_AUTH_CLIENT_SECRET"`
	Dir          string `env:"OJT_AUTH_DIR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"OJT_APP_TIMEOUT"`
	Verbose bool          `env:"OJT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".ojt")

	return &Config{
		Database: DatabaseConfig{
			Dir:          baseDir,
			Filename:     "ojt.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Auth: AuthConfig{
			Dir: filepath.Join(baseDir, "auth"),
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("OJT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("OJT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("OJT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("OJT_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Auth configuration
	if clientID := os.Getenv("OJT_AUTH_CLIENT_ID"); clientID != "" {
		c.Auth.ClientID = clientID
	}
	if clientSecret := os.Getenv("OJT_AUTH_CLIENT_SECRET"); clientSecret != "" {
		c.Auth.ClientSecret = clientSecret
	}
	if dir := os.Getenv("OJT_AUTH_DIR"); dir != "" {
		c.Auth.Dir = dir
	}

	// Application configuration
	if timeout := os.Getenv("OJT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("OJT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = verbose == "true" || verbose == "1"
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Auth.Dir == "" {
		return &ConfigError{Field: "auth.dir", Message: "auth directory cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
