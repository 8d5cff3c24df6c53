package workbook

import (
	"fmt"

	"workbook-generator/internal/diagnostic"
	"workbook-generator/internal/model"
	"workbook-generator/internal/schema"
)

// CheckReferences keeps the candidates whose reference fields all name an
// object in universe. Sheets referencing a dropped sheet are kept.
func CheckReferences(candidates []model.Sheet, universe schema.Universe, diags *diagnostic.Diagnostics) []model.Sheet {
	return filterSheets(candidates, universe.Contains, diags, "")
}

// CheckSurviving repeats the reference check against the surviving sheet
// set until no further sheet is dropped.
func CheckSurviving(candidates []model.Sheet, diags *diagnostic.Diagnostics) []model.Sheet {
	current := candidates
	cascade := ""

	for {
		slugs := slugSet(current)
		next := filterSheets(current, func(ref string) bool {
			_, ok := slugs[ref]
			return ok
		}, diags, cascade)

		if len(next) == len(current) {
			return next
		}

		current = next
		cascade = " (its target was dropped)"
	}
}

func filterSheets(
	candidates []model.Sheet,
	resolvable func(string) bool,
	diags *diagnostic.Diagnostics,
	note string,
) []model.Sheet {
	kept := make([]model.Sheet, 0, len(candidates))

	for _, s := range candidates {
		f, ok := firstDangling(s, resolvable)
		if !ok {
			kept = append(kept, s)
			continue
		}

		if diags != nil {
			diags.AddWarning(diagnostic.CodeDanglingReference,
				fmt.Sprintf("sheet %q dropped: field %q references %q%s",
					s.Slug, f.Key, f.RefTarget(), note),
				s.Slug, f.Key)
		}
	}

	return kept
}

func firstDangling(s model.Sheet, resolvable func(string) bool) (*model.Field, bool) {
	for i := range s.Fields {
		if ref := s.Fields[i].RefTarget(); ref != "" && !resolvable(ref) {
			return &s.Fields[i], true
		}
	}

	return nil, false
}

func slugSet(sheets []model.Sheet) map[string]struct{} {
	set := make(map[string]struct{}, len(sheets))
	for _, s := range sheets {
		set[s.Slug] = struct{}{}
	}

	return set
}
