package schema

import (
	"errors"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a TypeRef.
type Kind int

const (
	KindOther Kind = iota // interface, union, enum, input object or unknown
	KindScalar
	KindObject
	KindList
	KindNonNull
)

// MaxTypeDepth bounds wrapper nesting when resolving a type reference.
const MaxTypeDepth = 32

// ErrMalformedDocument indicates an introspection document that cannot be
// interpreted.
var ErrMalformedDocument = errors.New("malformed introspection document")

// TypeRef is a resolved field type. The set of implementations is closed.
type TypeRef interface {
	Kind() Kind
	String() string
	typeRef()
}

// ScalarRef is a named scalar leaf.
type ScalarRef struct {
	Name string
}

// ObjectRef is a named object leaf.
type ObjectRef struct {
	Name string
}

// ListRef wraps an element type.
type ListRef struct {
	Of TypeRef
}

// NonNullRef wraps a non-nullable inner type.
type NonNullRef struct {
	Of TypeRef
}

// OtherRef is any kind the tabular model cannot represent. RawKind keeps the
// original __TypeKind string for diagnostics.
type OtherRef struct {
	RawKind string
	Name    string
}

func (ScalarRef) Kind() Kind  { return KindScalar }
func (ObjectRef) Kind() Kind  { return KindObject }
func (ListRef) Kind() Kind    { return KindList }
func (NonNullRef) Kind() Kind { return KindNonNull }
func (OtherRef) Kind() Kind   { return KindOther }

func (ScalarRef) typeRef()  {}
func (ObjectRef) typeRef()  {}
func (ListRef) typeRef()    {}
func (NonNullRef) typeRef() {}
func (OtherRef) typeRef()   {}

func (t ScalarRef) String() string  { return t.Name }
func (t ObjectRef) String() string  { return t.Name }
func (t ListRef) String() string    { return "[" + typeString(t.Of) + "]" }
func (t NonNullRef) String() string { return typeString(t.Of) + "!" }

func (t OtherRef) String() string {
	if t.Name != "" {
		return t.Name
	}

	return t.RawKind
}

func typeString(t TypeRef) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

// Named returns the innermost named leaf of t, unwrapping lists and non-null
// wrappers.
func Named(t TypeRef) TypeRef {
	for i := 0; i <= MaxTypeDepth; i++ {
		switch tt := t.(type) {
		case NonNullRef:
			t = tt.Of
		case ListRef:
			t = tt.Of
		default:
			return t
		}
	}

	return t
}

// Object is a user-defined GraphQL object type.
type Object struct {
	Name        string
	Description string
	Fields      []Field
}

// Field is one field of an Object.
type Field struct {
	Name        string
	Description string
	Type        TypeRef
}

// IsRootOperation reports whether name is one of the default root operation type names.
func IsRootOperation(name string) bool {
	switch name {
	case "Query", "Mutation", "Subscription":
		return true
	default:
		return false
	}
}

// IsMetaName reports whether name carries an introspection metadata prefix.
// The single-underscore check also covers "__".
func IsMetaName(name string) bool {
	return strings.HasPrefix(name, "_")
}

// Universe is the set of extracted object names.
type Universe map[string]struct{}

// NewUniverse builds the universe of objects.
func NewUniverse(objects []Object) Universe {
	u := make(Universe, len(objects))
	for _, o := range objects {
		u[o.Name] = struct{}{}
	}

	return u
}

// Contains reports whether name is an extracted object.
func (u Universe) Contains(name string) bool {
	_, ok := u[name]
	return ok
}
