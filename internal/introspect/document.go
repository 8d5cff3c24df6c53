package introspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TypeKind is the raw __TypeKind string reported by introspection.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// ErrMissingSchema is returned when a response carries no __schema member.
var ErrMissingSchema = errors.New("introspection result has no __schema")

// Document is the standard introspection result shape: { __schema: { types: [...] } }.
type Document struct {
	Schema Schema `json:"__schema"`
}

// Schema is the __schema member of an introspection result.
type Schema struct {
	QueryType        *NamedRef  `json:"queryType,omitempty"`
	MutationType     *NamedRef  `json:"mutationType,omitempty"`
	SubscriptionType *NamedRef  `json:"subscriptionType,omitempty"`
	Types            []FullType `json:"types"`
}

// NamedRef points at a named type.
type NamedRef struct {
	Name string `json:"name"`
}

// FullType describes one named type.
type FullType struct {
	Kind        TypeKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
}

// Field describes one field of an object or interface type.
type Field struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        TypeRef `json:"type"`
}

// TypeRef is the recursive wrapper chain of a field type.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

// TypeNames returns the names of all types in document order.
func (d *Document) TypeNames() []string {
	names := make([]string, 0, len(d.Schema.Types))
	for _, t := range d.Schema.Types {
		names = append(names, t.Name)
	}

	return names
}

// Lookup returns the named type, or nil if absent.
func (d *Document) Lookup(name string) *FullType {
	for i := range d.Schema.Types {
		if d.Schema.Types[i].Name == name {
			return &d.Schema.Types[i]
		}
	}

	return nil
}

type responseError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

// Decode parses an introspection result. Both the full GraphQL response
// envelope ({"data": {"__schema": ...}}) and the bare data member
// ({"__schema": ...}) are accepted.
func Decode(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to decode introspection result: %w", err)
	}

	if _, ok := top["__schema"]; ok {
		return decodeDocument(data)
	}

	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode introspection response: %w", err)
	}

	if len(resp.Errors) > 0 && isNull(resp.Data) {
		return nil, &SchemaFetchError{Messages: resp.errorMessages()}
	}

	if isNull(resp.Data) {
		return nil, ErrMissingSchema
	}

	return decodeDocument(resp.Data)
}

func decodeDocument(data []byte) (*Document, error) {
	var probe struct {
		Schema json.RawMessage `json:"__schema"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode introspection data: %w", err)
	}

	if isNull(probe.Schema) {
		return nil, ErrMissingSchema
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode introspection data: %w", err)
	}

	return &doc, nil
}

func (r *response) errorMessages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}

	return msgs
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
