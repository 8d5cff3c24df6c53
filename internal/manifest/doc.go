// Package manifest reads and writes YAML workbook manifests.
//
// A manifest names a schema source and the workbook properties and sheet
// overrides to apply:
//
//	name: Star Wars
//	labels: [pinned]
//	source:
//	  url: https://example.test/graphql
//	  headers:
//	    Authorization: Bearer x
//	sheets:
//	  - slug: Film
//	    readonly: true
//
// Several workbooks can be listed under "workbooks:"; the top-level form
// above is shorthand for a single entry.
package manifest
