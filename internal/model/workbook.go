package model

import (
	"maps"
	"slices"
)

// WorkbookProperties are the caller-controlled workbook settings.
type WorkbookProperties struct {
	Name          string         `json:"name" yaml:"name"`
	Labels        []string       `json:"labels,omitempty" yaml:"labels,omitempty"`
	SpaceID       string         `json:"spaceId,omitempty" yaml:"spaceId,omitempty"`
	EnvironmentID string         `json:"environmentId,omitempty" yaml:"environmentId,omitempty"`
	Namespace     string         `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Actions       []Action       `json:"actions,omitempty" yaml:"actions,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Clone returns a deep-enough copy of p: slices and the top-level metadata map are copied.
func (p WorkbookProperties) Clone() WorkbookProperties {
	p.Labels = slices.Clone(p.Labels)
	p.Actions = slices.Clone(p.Actions)
	p.Metadata = maps.Clone(p.Metadata)

	return p
}

// Workbook is an ordered collection of sheets plus metadata.
type Workbook struct {
	WorkbookProperties `yaml:",inline"`

	Sheets []Sheet `json:"sheets" yaml:"sheets"`
}

// Sheet returns the sheet with the given slug.
func (w *Workbook) Sheet(slug string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Slug == slug {
			return &w.Sheets[i], true
		}
	}

	return nil, false
}

// Slugs returns the sheet slugs in order.
func (w *Workbook) Slugs() []string {
	slugs := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		slugs = append(slugs, s.Slug)
	}

	return slugs
}
