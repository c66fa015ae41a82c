package contracts

import "context"

// Field is the view of a schema node exposed to hooks and transformers.
// It carries everything a stage needs: the node's identity for error
// attribution, its settings, and the error-raising helper that tags
// failures with the originating node.
type Field interface {
	// Name returns the property key of the node under its parent,
	// empty for the root.
	Name() string

	// FullPath returns the dot-joined path from the root to this node,
	// skipping empty names.
	FullPath() string

	// TypeName returns the resolved type name of a leaf node, or the
	// nested-schema sentinel for branches.
	TypeName() string

	// Setting returns a single configuration option and whether it was set.
	Setting(name string) (any, bool)

	// Settings returns the node's full settings map. The map is shared,
	// not copied; hooks must treat it as read-only.
	Settings() map[string]any

	// SubSchema returns the per-item schema built from an arraySchema or
	// mapSchema setting, or nil when the node declares none.
	SubSchema() ValueParser

	// NewError builds a validation error attributed to this node.
	NewError(message string, value any) *ValidationError
}

// ValueParser parses a single value through a schema subtree. It is the
// slice of the schema tree's behavior that transformers may invoke, e.g.
// to run every array element through an item schema.
type ValueParser interface {
	ParseValue(ctx context.Context, value any, state *State) (any, error)
}

// Hook is the uniform signature of every lifecycle stage: schema-level,
// property-level and type-level cast/validate/parse. A hook receives the
// current value and returns the (possibly transformed) value, or an error
// that aborts the remaining stages for the field. A hook that blocks
// suspends the parse; there is no cancellation beyond the passed context.
type Hook func(ctx context.Context, value any, field Field, state *State) (any, error)
