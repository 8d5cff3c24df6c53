// Package workbook orchestrates workbook generation from a GraphQL schema
// source.
//
// The pipeline:
//
//  1. introspect the source into a raw document
//  2. extract the object universe U
//  3. generate one candidate sheet per object, in parallel
//  4. drop sheets whose references cannot be resolved
//  5. merge the surviving sheets into the caller's workbook properties
//
// Two reference checks are available. ReferenceCheckSurviving (the default)
// repeats the check against the surviving sheets until nothing else drops,
// so a sheet pointing at a dropped sheet is dropped as well.
// ReferenceCheckUniverse runs a single pass against U and may leave such
// dangling references in place.
package workbook
