package introspect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSource indicates the source is not a URL, an SDL document or a
// recognized schema instance.
var ErrInvalidSource = errors.New("not a valid GraphQL schema source")

// ErrSchemaFetch indicates the remote endpoint did not return a schema.
var ErrSchemaFetch = errors.New("could not get GraphQL schema")

// ErrInvalidSDL wraps schema construction failures for SDL sources.
var ErrInvalidSDL = errors.New("failed to build schema from SDL")

// InvalidSourceError reports an unusable source value.
type InvalidSourceError struct {
	Source any
	Reason string
}

func (e *InvalidSourceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrInvalidSource, e.Reason)
	}

	return fmt.Sprintf("%s: unsupported source type %T", ErrInvalidSource, e.Source)
}

// Is reports whether target is ErrInvalidSource.
func (e *InvalidSourceError) Is(target error) bool {
	return target == ErrInvalidSource
}

// SchemaFetchError reports a failed remote introspection. StatusText carries
// the HTTP status text for non-2xx responses; Messages carries GraphQL errors
// returned without data.
type SchemaFetchError struct {
	URL        string
	StatusCode int
	StatusText string
	Messages   []string
}

func (e *SchemaFetchError) Error() string {
	var parts []string
	if e.StatusText != "" {
		parts = append(parts, e.StatusText)
	}

	if len(e.Messages) > 0 {
		parts = append(parts, strings.Join(e.Messages, "; "))
	}

	if len(parts) == 0 {
		return ErrSchemaFetch.Error()
	}

	return fmt.Sprintf("%s: %s", ErrSchemaFetch, strings.Join(parts, ": "))
}

// Is reports whether target is ErrSchemaFetch.
func (e *SchemaFetchError) Is(target error) bool {
	return target == ErrSchemaFetch
}
