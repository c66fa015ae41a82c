package schemavalidator

import (
	"github.com/devtin/schema-validator/contracts"
	"github.com/devtin/schema-validator/schema"
	"github.com/devtin/schema-validator/transformers"
)

// Re-exported types, for callers that only ever import the facade.
type (
	Schema      = schema.Schema
	Prop        = schema.Prop
	Props       = schema.Props
	Method      = schema.Method
	BuildOption = schema.BuildOption
	ParseOption = schema.ParseOption

	Transformer = transformers.Transformer
	Registry    = transformers.Registry

	Field            = contracts.Field
	Hook             = contracts.Hook
	State            = contracts.State
	ValidationError  = contracts.ValidationError
	ValidationErrors = contracts.ValidationErrors
)

// Build and parse options re-exported alongside the constructors.
var (
	WithName          = schema.WithName
	WithSettings      = schema.WithSettings
	WithMethods       = schema.WithMethods
	WithDefaultValues = schema.WithDefaultValues
	WithRegistry      = schema.WithRegistry
	WithLogger        = schema.WithLogger
	WithState         = schema.WithState
)

// New builds a schema tree from a definition value.
func New(definition any, opts ...BuildOption) (*Schema, error) {
	return schema.New(definition, opts...)
}

// MustNew builds a schema tree and panics on a construction error.
func MustNew(definition any, opts ...BuildOption) *Schema {
	return schema.MustNew(definition, opts...)
}

// NewState creates an empty parse state, for callers that pre-seed values
// before parsing via WithState.
func NewState() *State {
	return contracts.NewState()
}

// Register adds a custom transformer to the process-wide registry.
func Register(name string, t *Transformer) error {
	return transformers.Register(name, t)
}

// MustRegister adds a custom transformer to the process-wide registry and
// panics on error. Intended for init-time registration.
func MustRegister(name string, t *Transformer) {
	transformers.MustRegister(name, t)
}
