package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"workbook-generator/internal/diagnostic"
)

func severityColor(s diagnostic.Severity) *color.Color {
	switch s {
	case diagnostic.SeverityError:
		return color.New(color.FgRed, color.Bold)
	case diagnostic.SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgHiBlack)
	}
}

// printDiagnostics writes one line per diagnostic, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		tag := severityColor(d.Severity).Sprintf("%-7s", d.Severity)
		fmt.Fprintf(w, "%s %s\n", tag, d.String())
	}
}

// printSummary writes a one-line count of sheets and diagnostics.
func printSummary(w io.Writer, name string, sheets int, diags *diagnostic.Diagnostics) {
	mark := color.New(color.FgGreen).Sprint("✓")
	if diags.HasWarnings() {
		mark = color.New(color.FgYellow).Sprint("⚠")
	}

	if diags.HasErrors() {
		mark = color.New(color.FgRed).Sprint("✗")
	}

	fmt.Fprintf(w, "%s %s: %d sheets, %d warnings, %d infos\n",
		mark, name, sheets, len(diags.Warnings), len(diags.Infos))
}
