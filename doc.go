// Package schemavalidator validates and sanitizes untrusted data against
// declarative schema definitions.
//
// A schema is a tree built from plain Go values (or YAML documents): maps
// describe objects, strings name types, and settings tune each property.
// Parsing walks the tree against an input value, coercing and validating
// every property, and either returns the sanitized result or a composite
// error naming every offending field by its dotted path.
//
// This package is a facade over the concern packages:
//
//   - schema: tree construction, path logic, and the parse pipeline
//   - transformers: the type registry and the built-in types
//   - contracts: shared types crossed by hooks and errors
//
// Basic usage:
//
//	user := schemavalidator.MustNew(map[string]any{
//		"name":  map[string]any{"type": "String", "required": true},
//		"email": "String",
//	})
//
//	clean, err := user.Parse(ctx, payload)
package schemavalidator
