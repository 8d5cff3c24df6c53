// Package config loads service configuration from environment variables
// with defaults, and validates it on startup.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig
	Introspection IntrospectionConfig
	Generation    GenerationConfig
	Platform      PlatformConfig
	Logging       LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// IntrospectionConfig controls remote schema fetching.
type IntrospectionConfig struct {
	Timeout          time.Duration `env:"INTROSPECTION_TIMEOUT" default:"30s"`
	MaxResponseBytes int64         `env:"INTROSPECTION_MAX_RESPONSE_BYTES" default:"33554432"`
	UserAgent        string        `env:"INTROSPECTION_USER_AGENT" default:"workbook-generator"`
}

// GenerationConfig controls the workbook pipeline.
type GenerationConfig struct {
	// ReferenceCheck is "surviving" or "universe" (default: surviving)
	ReferenceCheck string `env:"GENERATION_REFERENCE_CHECK" default:"surviving"`

	// Workers bounds concurrent sheet generation (default: 4)
	Workers int `env:"GENERATION_WORKERS" default:"4"`
}

// PlatformConfig holds the workbook-creation API settings. Both are
// optional; publishing is unavailable without them.
type PlatformConfig struct {
	URL    string `env:"PLATFORM_API_URL" envAlt:"FLATFILE_API_URL"`
	APIKey string `env:"PLATFORM_API_KEY" envAlt:"FLATFILE_API_KEY"`
}

// Enabled reports whether publishing is configured.
func (p PlatformConfig) Enabled() bool {
	return p.URL != "" && p.APIKey != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
