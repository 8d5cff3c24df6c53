package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"workbook-generator/internal/model"
)

const (
	maxSheetNameLen = 31
	lastRow         = 1048576
	commentAuthor   = "workbook-generator"
)

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

// Template builds an .xlsx import template for wb: one worksheet per sheet
// with a header row of field labels. Required headers are highlighted,
// boolean columns get a TRUE/FALSE drop-down and reference or multi-value
// columns carry a note. The caller must Close the returned file.
func Template(wb *model.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()

	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	used := make(map[string]struct{}, len(wb.Sheets))
	defaultSheet := f.GetSheetName(0)

	for i := range wb.Sheets {
		s := &wb.Sheets[i]
		name := uniqueSheetName(displayName(s), used)

		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeSheet(f, name, s, styles); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", s.Slug, err)
		}
	}

	f.SetActiveSheet(0)

	return f, nil
}

// WriteTemplate builds the template and saves it to path.
func WriteTemplate(path string, wb *model.Workbook) error {
	f, err := Template(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save template %s: %w", path, err)
	}

	return nil
}

type templateStyles struct {
	header   int
	required int
}

func newStyles(f *excelize.File) (templateStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7E6E6"}},
	})
	if err != nil {
		return templateStyles{}, fmt.Errorf("header style: %w", err)
	}

	required, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#9C0006"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFC7CE"}},
	})
	if err != nil {
		return templateStyles{}, fmt.Errorf("required style: %w", err)
	}

	return templateStyles{header: header, required: required}, nil
}

func writeSheet(f *excelize.File, name string, s *model.Sheet, styles templateStyles) error {
	for i := range s.Fields {
		field := &s.Fields[i]
		col := i + 1

		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(name, cell, field.Label); err != nil {
			return err
		}

		style := styles.header
		if field.IsRequired() {
			style = styles.required
		}

		if err := f.SetCellStyle(name, cell, cell, style); err != nil {
			return err
		}

		if note := fieldNote(field); note != "" {
			if err := f.AddComment(name, excelize.Comment{
				Cell:   cell,
				Author: commentAuthor,
				Text:   note,
			}); err != nil {
				return err
			}
		}

		if field.Type == model.FieldTypeBoolean {
			if err := addBooleanValidation(f, name, col); err != nil {
				return err
			}
		}
	}

	if len(s.Fields) == 0 {
		return nil
	}

	last, err := excelize.ColumnNumberToName(len(s.Fields))
	if err != nil {
		return err
	}

	if err := f.SetColWidth(name, "A", last, 20); err != nil {
		return err
	}

	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func addBooleanValidation(f *excelize.File, name string, col int) error {
	from, err := excelize.CoordinatesToCellName(col, 2)
	if err != nil {
		return err
	}

	to, err := excelize.CoordinatesToCellName(col, lastRow)
	if err != nil {
		return err
	}

	dv := excelize.NewDataValidation(true)
	dv.Sqref = from + ":" + to

	if err := dv.SetDropList([]string{"TRUE", "FALSE"}); err != nil {
		return err
	}

	return f.AddDataValidation(name, dv)
}

func fieldNote(field *model.Field) string {
	var parts []string

	if field.Description != "" {
		parts = append(parts, field.Description)
	}

	if ref := field.RefTarget(); ref != "" {
		parts = append(parts, fmt.Sprintf("References %s.%s", ref, field.Config.Key))
	}

	if field.Multi {
		parts = append(parts, "Multiple values, comma separated")
	}

	return strings.Join(parts, "\n")
}

// displayName returns the display name of a sheet, falling back to its slug.
func displayName(s *model.Sheet) string {
	if s.Name != "" {
		return s.Name
	}

	return s.Slug
}

func uniqueSheetName(name string, used map[string]struct{}) string {
	base := truncate(sheetNameReplacer.Replace(name), maxSheetNameLen)
	if base == "" {
		base = "Sheet"
	}

	candidate := base

	for n := 2; ; n++ {
		if _, ok := used[strings.ToLower(candidate)]; !ok {
			used[strings.ToLower(candidate)] = struct{}{}
			return candidate
		}

		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncate(base, maxSheetNameLen-len(suffix)) + suffix
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
