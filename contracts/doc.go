// Package contracts provides the core types shared by the schema tree and the
// transformer set.
//
// This package defines the contracts that cross package boundaries:
//   - Field: what a hook may see of the schema node it runs for
//   - Hook: the uniform signature of cast/validate/parse stages
//   - State: a keyed store threaded through one parse invocation
//   - ValidationError / ValidationErrors: the error model surfaced to callers
//
// Transformers depend on contracts only, never on the schema package, so
// custom types can be written without importing the tree.
package contracts
