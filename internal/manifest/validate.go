package manifest

import (
	"fmt"
	"strings"

	"workbook-generator/internal/diagnostic"
)

// Validate checks the structure of a manifest. Every workbook needs exactly
// one source kind, and every sheet override a unique non-empty slug.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if len(f.Workbooks) == 0 {
		res.AddError("no_workbooks", "manifest defines no workbooks", "", "")
		return res
	}

	for i := range f.Workbooks {
		w := &f.Workbooks[i]
		where := workbookLabel(i, w)

		switch kinds := w.Source.Kinds(); len(kinds) {
		case 0:
			res.AddError("missing_source", "workbook has no source (url, sdl, sdl_file or introspection_file)", where, "source")
		case 1:
		default:
			res.AddError("ambiguous_source",
				fmt.Sprintf("workbook source sets %s; exactly one is allowed", strings.Join(kinds, ", ")),
				where, "source")
		}

		if len(w.Source.Headers) > 0 && w.Source.URL == "" {
			res.AddWarning("unused_headers", "source headers only apply to url sources", where, "source.headers")
		}

		switch w.ReferenceCheck {
		case "", "surviving", "universe":
		default:
			res.AddError("invalid_reference_check",
				fmt.Sprintf("referenceCheck %q must be surviving or universe", w.ReferenceCheck),
				where, "referenceCheck")
		}

		seen := map[string]struct{}{}

		for j, s := range w.Sheets {
			if s.Slug == "" {
				res.AddError("missing_slug", fmt.Sprintf("sheet override #%d has no slug", j+1), where, "sheets")
				continue
			}

			if _, ok := seen[s.Slug]; ok {
				res.AddError("duplicate_slug", fmt.Sprintf("duplicate sheet override %q", s.Slug), where, s.Slug)
				continue
			}

			seen[s.Slug] = struct{}{}
		}
	}

	return res
}

func workbookLabel(i int, w *Workbook) string {
	if w.Name != "" {
		return w.Name
	}

	return fmt.Sprintf("workbooks[%d]", i)
}
