// Package sheet converts extracted GraphQL objects into sheet descriptors.
//
// MapField maps a single object field to a tabular field:
//
//	Int, Float        -> number
//	Boolean           -> boolean
//	other scalars     -> string
//	object            -> reference (has-one, keyed by "id")
//	list of anything  -> string, multi
//	T!                -> mapping of T plus the "required" constraint
//
// Interfaces, unions, enums and input objects are skipped with a warning.
//
// Generate assembles one sheet from an object, prepending an "id" field when
// the object has none and layering a matching SheetOverride underneath the
// computed properties.
package sheet
