package config

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration with every default applied and no
// environment lookups.
func Default() *Config {
	cfg := &Config{}
	_ = applyDefaults(reflect.ValueOf(cfg).Elem())

	return cfg
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	return walk(v, func(field reflect.StructField) string {
		value := os.Getenv(field.Tag.Get("env"))
		if value == "" {
			if alt := field.Tag.Get("envAlt"); alt != "" {
				value = os.Getenv(alt)
			}
		}

		if value == "" {
			value = field.Tag.Get("default")
		}

		return value
	})
}

func applyDefaults(v reflect.Value) error {
	return walk(v, func(field reflect.StructField) string {
		return field.Tag.Get("default")
	})
}

func walk(v reflect.Value, lookup func(reflect.StructField) string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := walk(fieldVal, lookup); err != nil {
				return err
			}

			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value := lookup(field)
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}

			field.Set(reflect.ValueOf(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer: %w", err)
			}

			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}

		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}

	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}

	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}

	if c.Introspection.Timeout <= 0 {
		errs = append(errs, "INTROSPECTION_TIMEOUT must be positive")
	}

	if c.Introspection.MaxResponseBytes <= 0 {
		errs = append(errs, "INTROSPECTION_MAX_RESPONSE_BYTES must be positive")
	}

	switch strings.ToLower(c.Generation.ReferenceCheck) {
	case "surviving", "universe":
	default:
		errs = append(errs, fmt.Sprintf("GENERATION_REFERENCE_CHECK (%q) must be one of: surviving, universe",
			c.Generation.ReferenceCheck))
	}

	if c.Generation.Workers <= 0 {
		errs = append(errs, "GENERATION_WORKERS must be positive")
	}

	if c.Platform.URL != "" {
		if u, err := url.Parse(c.Platform.URL); err != nil || !u.IsAbs() {
			errs = append(errs, fmt.Sprintf("PLATFORM_API_URL (%q) must be an absolute URL", c.Platform.URL))
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// The platform API key is masked.
func (c *Config) String() string {
	apiKey := ""
	if c.Platform.APIKey != "" {
		apiKey = "[MASKED]"
	}

	var b strings.Builder

	b.WriteString("Config{")
	fmt.Fprintf(&b, "Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port)
	fmt.Fprintf(&b, "Introspection: {Timeout: %s, MaxResponseBytes: %d}, ",
		c.Introspection.Timeout, c.Introspection.MaxResponseBytes)
	fmt.Fprintf(&b, "Generation: {ReferenceCheck: %q, Workers: %d}, ",
		c.Generation.ReferenceCheck, c.Generation.Workers)
	fmt.Fprintf(&b, "Platform: {URL: %q, APIKey: %q}, ", c.Platform.URL, apiKey)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")

	return b.String()
}
