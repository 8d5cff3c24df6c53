package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// shorthand is the on-disk shape: either a workbooks list or a single
// inline workbook.
type shorthand struct {
	Version   string     `yaml:"version,omitempty"`
	Workbooks []Workbook `yaml:"workbooks,omitempty"`
	Workbook  `yaml:",inline"`
}

// LoadFile loads and parses a manifest from the given path. Relative file
// sources resolve against the manifest's directory.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var raw shorthand

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	f := &File{Version: raw.Version, Workbooks: raw.Workbooks}
	if len(f.Workbooks) == 0 && !isZero(&raw.Workbook) {
		f.Workbooks = []Workbook{raw.Workbook}
	}

	applyDefaults(f)

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Workbooks {
		w := &f.Workbooks[i]
		w.ReferenceCheck = strings.ToLower(strings.TrimSpace(w.ReferenceCheck))

		for j := range w.Sheets {
			w.Sheets[j].Slug = strings.TrimSpace(w.Sheets[j].Slug)
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Resolve returns the generator source value for s. URLs and inline SDL
// are returned as strings, SDL files as their contents, and introspection
// files as raw JSON bytes.
func (f *File) Resolve(s Source) (any, error) {
	switch {
	case s.URL != "":
		return s.URL, nil
	case s.SDL != "":
		return s.SDL, nil
	case s.SDLFile != "":
		data, err := os.ReadFile(f.path(s.SDLFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read SDL file %s: %w", s.SDLFile, err)
		}

		return string(data), nil
	case s.IntrospectionFile != "":
		data, err := os.ReadFile(f.path(s.IntrospectionFile))
		if err != nil {
			return nil, fmt.Errorf("failed to read introspection file %s: %w", s.IntrospectionFile, err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("manifest source is empty")
	}
}

func (f *File) path(p string) string {
	if filepath.IsAbs(p) || f.Dir == "" {
		return p
	}

	return filepath.Join(f.Dir, p)
}

func isZero(w *Workbook) bool {
	return w.Name == "" &&
		len(w.Sheets) == 0 &&
		len(w.Source.Kinds()) == 0 &&
		len(w.Labels) == 0
}
