// Package schema extracts user-defined GraphQL object types from a raw
// introspection document.
//
// Key types:
//   - Object: a named object type with its ordered fields
//   - Field: a field name, description and resolved TypeRef
//   - TypeRef: a closed sum over ScalarRef, ObjectRef, ListRef, NonNullRef and OtherRef
//
// Root operation types (Query, Mutation, Subscription) and introspection
// metadata types (names starting with "_") are never extracted.
package schema
