package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"workbook-generator/internal/common"
	"workbook-generator/internal/model"
)

// File is a parsed manifest.
type File struct {
	Version   string     `yaml:"version,omitempty"`
	Workbooks []Workbook `yaml:"workbooks"`

	// Dir is the directory relative file sources resolve against.
	Dir string `yaml:"-"`
}

// Workbook is one workbook entry of a manifest.
type Workbook struct {
	Name           string                `yaml:"name,omitempty"`
	Labels         StringOrArray         `yaml:"labels,omitempty"`
	SpaceID        string                `yaml:"spaceId,omitempty"`
	EnvironmentID  string                `yaml:"environmentId,omitempty"`
	Namespace      string                `yaml:"namespace,omitempty"`
	ReferenceCheck string                `yaml:"referenceCheck,omitempty"`
	Source         Source                `yaml:"source"`
	Actions        []model.Action        `yaml:"actions,omitempty"`
	Metadata       map[string]any        `yaml:"metadata,omitempty"`
	Sheets         []model.SheetOverride `yaml:"sheets,omitempty"`
}

// Properties returns the workbook-level properties of the entry.
func (w *Workbook) Properties() model.WorkbookProperties {
	return model.WorkbookProperties{
		Name:          w.Name,
		Labels:        []string(w.Labels),
		SpaceID:       w.SpaceID,
		EnvironmentID: w.EnvironmentID,
		Namespace:     w.Namespace,
		Actions:       w.Actions,
		Metadata:      w.Metadata,
	}.Clone()
}

// Source locates the GraphQL schema. Exactly one of URL, SDL, SDLFile and
// IntrospectionFile must be set.
type Source struct {
	URL               string            `yaml:"url,omitempty"`
	SDL               string            `yaml:"sdl,omitempty"`
	SDLFile           string            `yaml:"sdl_file,omitempty"`
	IntrospectionFile string            `yaml:"introspection_file,omitempty"`
	Headers           map[string]string `yaml:"headers,omitempty"`
}

// Kinds lists the source kinds that are set.
func (s Source) Kinds() []string {
	var kinds []string

	for _, k := range []struct {
		name, value string
	}{
		{"url", s.URL},
		{"sdl", s.SDL},
		{"sdl_file", s.SDLFile},
		{"introspection_file", s.IntrospectionFile},
	} {
		if k.value != "" {
			kinds = append(kinds, k.name)
		}
	}

	return kinds
}

// String describes the source for logs.
func (s Source) String() string {
	return common.FirstNonEmpty(s.URL, s.SDLFile, s.IntrospectionFile, firstLine(s.SDL), "<empty>")
}

// StringOrArray represents a value that can be a single string or an array.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}

	return s
}
