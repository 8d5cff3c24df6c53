// Package diagnostic provides structured warnings, errors, and
// informational notes collected while deriving a workbook from a schema.
//
// Diagnostics are returned to the caller alongside the generated workbook
// instead of being written to a global log, so callers can inspect what was
// skipped, synthesized or dropped.
//
// Key capabilities:
//   - Skipped field reports (unsupported GraphQL type kinds)
//   - Synthesized identity field notes
//   - Dropped sheet reports with the dangling reference that caused them
//   - Override mismatch warnings
package diagnostic
