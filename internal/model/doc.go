// Package model defines the tabular descriptors produced from a GraphQL
// schema: workbooks, sheets and fields, plus the partial sheet overrides a
// caller may supply.
//
// JSON and YAML tags follow the import platform's wire names, so a Workbook
// can be handed whole to the workbook-creation API.
package model
