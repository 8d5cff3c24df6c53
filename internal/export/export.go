// Package export writes generated workbooks as JSON, YAML or as an .xlsx
// import template.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"workbook-generator/internal/model"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (want .json, .yaml, .yml or .xlsx)", filepath.Ext(path))
	}
}

// WriteJSON writes wb as indented JSON.
func WriteJSON(w io.Writer, wb *model.Workbook) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(wb); err != nil {
		return fmt.Errorf("failed to encode workbook JSON: %w", err)
	}

	return nil
}

// WriteYAML writes wb as YAML.
func WriteYAML(w io.Writer, wb *model.Workbook) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(wb); err != nil {
		return fmt.Errorf("failed to encode workbook YAML: %w", err)
	}

	return enc.Close()
}

// Write encodes wb in the given format.
func Write(w io.Writer, format Format, wb *model.Workbook) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, wb)
	case FormatYAML:
		return WriteYAML(w, wb)
	case FormatXLSX:
		f, err := Template(wb)
		if err != nil {
			return err
		}
		defer f.Close()

		return f.Write(w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteFile writes wb to path, choosing the format by extension.
func WriteFile(path string, wb *model.Workbook) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	if format == FormatXLSX {
		return WriteTemplate(path, wb)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(out, format, wb); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
