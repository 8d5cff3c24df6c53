// Package introspect obtains a raw GraphQL introspection document from a
// schema source.
//
// Supported sources:
//   - an absolute URL, fetched with an HTTP POST of the introspection query
//   - an SDL document, built with gqlparser
//   - schema instances from gqlparser, graph-gophers/graphql-go and graphql-go/graphql
//   - a JSON introspection result, raw or already decoded
//
// This is the only package that performs network or parsing I/O; everything
// downstream works on the decoded Document.
package introspect
