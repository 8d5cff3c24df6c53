// Package main provides the CLI entrypoint for workbook-generator.
//
// workbook-generator derives data-import workbooks from GraphQL schemas:
//   - introspects a schema from a URL, an SDL document or an introspection result
//   - maps object types to sheets and their fields to typed columns
//   - drops sheets whose references cannot be resolved
//   - writes the workbook as JSON, YAML or an .xlsx template, or publishes it
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"workbook-generator/internal/cli"
	"workbook-generator/internal/config"
	"workbook-generator/internal/logging"
)

func main() {
	// .env is optional; real environment variables take precedence
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	if envErr == nil {
		slog.Debug("loaded .env file")
	}

	slog.Debug("configuration loaded", "config", cfg.String())

	if err := cli.RootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
