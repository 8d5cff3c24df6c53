// Package cli implements the workbook-generator subcommands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"workbook-generator/internal/config"
	"workbook-generator/internal/introspect"
)

// readSource turns a command-line source argument into a generator source.
// An argument naming an existing file is read: .json files are
// introspection results, anything else is SDL. Other arguments are passed
// through as URL or SDL strings.
func readSource(arg string) (any, error) {
	if introspect.IsURL(arg) {
		return arg, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		// not a readable path: URL or inline SDL
		return arg, nil
	}

	if info.IsDir() {
		return nil, fmt.Errorf("source %s is a directory", arg)
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to read source %s: %w", arg, err)
	}

	if strings.EqualFold(filepath.Ext(arg), ".json") {
		return data, nil
	}

	return string(data), nil
}

// parseHeaders parses repeated k=v flags.
func parseHeaders(pairs []string) (map[string]string, error) {
	headers := make(map[string]string, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid header %q (want key=value)", p)
		}

		headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return headers, nil
}

// newIntrospector builds an introspector from configuration plus headers.
func newIntrospector(cfg *config.Config, headers map[string]string) *introspect.Introspector {
	opts := []introspect.Option{
		introspect.WithTimeout(cfg.Introspection.Timeout),
		introspect.WithMaxResponseBytes(cfg.Introspection.MaxResponseBytes),
		introspect.WithUserAgent(cfg.Introspection.UserAgent),
	}

	for k, v := range headers {
		opts = append(opts, introspect.WithHeader(k, v))
	}

	return introspect.New(opts...)
}
