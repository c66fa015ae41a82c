package schema

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/devtin/schema-validator/contracts"
	"github.com/devtin/schema-validator/internal/maputil"
	"github.com/devtin/schema-validator/transformers"
)

const (
	invalidSchemaMessage = "Invalid object schema"
	invalidDataMessage   = "Data is not valid"
)

type parseOptions struct {
	state *contracts.State
}

// ParseOption configures one parse invocation.
type ParseOption func(*parseOptions)

// WithState threads a caller-supplied state through every hook of the parse.
func WithState(state *contracts.State) ParseOption {
	return func(o *parseOptions) { o.state = state }
}

// Parse walks the tree against an input value and returns the sanitized
// value, or a *contracts.ValidationErrors composite describing every field
// failure. A nil input is treated as absent; an optional tree that resolves
// to no value at all returns nil, nil.
func (s *Schema) Parse(ctx context.Context, v any, opts ...ParseOption) (any, error) {
	po := &parseOptions{}
	for _, opt := range opts {
		opt(po)
	}
	state := po.state
	if state == nil {
		state = contracts.NewState()
	}

	present := v != nil

	// Schema-level cast fires once per invocation on the whole input.
	if s.isBranch() {
		cast, err := s.applyHookSetting(ctx, "cast", v, state)
		if err != nil {
			return nil, contracts.NewValidationErrors(s, invalidDataMessage, []error{err}, v)
		}
		v = cast
		present = v != nil
	}

	out, outPresent, err := s.parse(ctx, v, present, state)
	if err != nil {
		return nil, err
	}

	// Schema-level validate fires once on the assembled result.
	if s.isBranch() {
		validated, err := s.applyHookSetting(ctx, "validate", out, state)
		if err != nil {
			return nil, contracts.NewValidationErrors(s, invalidDataMessage, []error{err}, v)
		}
		if validated != nil {
			out = validated
			outPresent = true
		}
	}

	if !outPresent {
		return nil, nil
	}
	return out, nil
}

// ParseValue parses a single value through the subtree, for collaborators
// holding a node as a contracts.ValueParser (e.g. array item schemas).
func (s *Schema) ParseValue(ctx context.Context, v any, state *contracts.State) (any, error) {
	if state == nil {
		state = contracts.NewState()
	}
	out, present, err := s.parse(ctx, v, v != nil, state)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return out, nil
}

func (s *Schema) parse(ctx context.Context, v any, present bool, state *contracts.State) (any, bool, error) {
	if s.isBranch() {
		return s.parseBranch(ctx, v, state)
	}
	return s.parseLeaf(ctx, v, present, state)
}

func (s *Schema) parseBranch(ctx context.Context, v any, state *contracts.State) (any, bool, error) {
	// A non-map value exposes no readable keys: structural validation
	// passes vacuously and every child sees an absent sub-value, so
	// required fields report through the regular per-field channel.
	obj, isMap := v.(map[string]any)

	if isMap {
		own := s.OwnPaths()
		if !maputil.KeysWithin(obj, own) {
			unknown := maputil.UnknownKeys(obj, own)
			errs := make([]error, len(unknown))
			for i, key := range unknown {
				offending, _ := maputil.ValueAt(obj, key)
				errs[i] = s.NewError(fmt.Sprintf("Unknown property %s", key), offending)
			}
			return nil, false, contracts.NewValidationErrors(s, invalidSchemaMessage, errs, v)
		}
	}

	var errs []error
	result := make(map[string]any, len(s.children))

	for _, child := range s.children {
		var sub any
		var subPresent bool
		if isMap {
			sub, subPresent = obj[child.name]
		}

		if !subPresent && child.hasDefaultValue {
			sub = resolveDefault(child.defaultValue, state)
			subPresent = sub != nil
		}

		res, resPresent, err := child.parse(ctx, sub, subPresent, state)
		if err != nil {
			// Composite child failures are spliced so the branch surfaces
			// one flat, declaration-ordered error list.
			if group, ok := err.(*contracts.ValidationErrors); ok {
				errs = append(errs, group.Errors...)
			} else {
				errs = append(errs, err)
			}
			continue
		}
		if resPresent {
			result[child.name] = res
		}
	}

	if len(errs) > 0 {
		return nil, false, contracts.NewValidationErrors(s, invalidDataMessage, errs, v)
	}
	if len(result) == 0 {
		return nil, false, nil
	}
	return result, true, nil
}

func (s *Schema) parseLeaf(ctx context.Context, v any, present bool, state *contracts.State) (any, bool, error) {
	// Schema-level defaults win over per-field defaults; the per-field
	// default still applies when the schema-level one resolves to nothing.
	if s.hasDefaultValue && !present {
		v = resolveDefault(s.defaultValue, state)
		present = v != nil
	}
	if !present || isFalsy(v) {
		if def, exists := s.settings["default"]; exists {
			v = resolveDefault(def, state)
			present = true
		}
	}

	required, message := requiredSetting(s.settings)
	if required && (!present || isFalsy(v)) {
		if message == "" {
			message = fmt.Sprintf("Property %s is required", s.FullPath())
		}
		return nil, false, s.NewError(message, v)
	}

	// Absence of an optional field propagates cleanly.
	if !present {
		return nil, false, nil
	}

	if v == nil && isTruthy(s.settings["allowNull"]) {
		return nil, true, nil
	}

	s.logger.Debug("parsing property",
		"path", s.FullPath(),
		"type", s.TypeName(),
	)

	var lastErr error
	for _, typeName := range s.typeNames {
		out, err := s.runType(ctx, typeName, v, state)
		if err == nil {
			return out, true, nil
		}
		lastErr = err
	}
	return nil, false, lastErr
}

// runType runs one transformer's full stage order for the leaf: loaders,
// property-level cast, type-level cast, type-level validate, property-level
// validate, type-level parse.
func (s *Schema) runType(ctx context.Context, typeName string, v any, state *contracts.State) (any, error) {
	tr := s.transformer
	if tr == nil {
		var exists bool
		tr, exists = s.registry.Lookup(typeName)
		if !exists {
			return nil, s.NewError(fmt.Sprintf("Don't know how to resolve %s in property %s", typeName, s.FullPath()), v)
		}
	}

	v, err := s.runLoaders(ctx, tr, v, state)
	if err != nil {
		return nil, err
	}

	v, err = s.applyHookSetting(ctx, "cast", v, state)
	if err != nil {
		return nil, err
	}

	v, err = s.applyHook(ctx, tr.Cast, v, state)
	if err != nil {
		return nil, err
	}

	v, err = s.applyHook(ctx, tr.Validate, v, state)
	if err != nil {
		return nil, err
	}

	v, err = s.applyHookSetting(ctx, "validate", v, state)
	if err != nil {
		return nil, err
	}

	return s.applyHook(ctx, tr.Parse, v, state)
}

// runLoaders feeds the value through each loader type's own stages, in
// chain order. A loader failure short-circuits the field.
func (s *Schema) runLoaders(ctx context.Context, tr *transformers.Transformer, v any, state *contracts.State) (any, error) {
	for _, loaderName := range tr.Loaders {
		loader, exists := s.registry.Lookup(loaderName)
		if !exists {
			return nil, s.NewError(fmt.Sprintf("Don't know how to resolve %s in property %s", loaderName, s.FullPath()), v)
		}

		var err error
		v, err = s.runStages(ctx, loader, v, state)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// runStages executes a transformer's type-level stages only, used for
// loader chains where property-level hooks must not re-fire.
func (s *Schema) runStages(ctx context.Context, tr *transformers.Transformer, v any, state *contracts.State) (any, error) {
	v, err := s.runLoaders(ctx, tr, v, state)
	if err != nil {
		return nil, err
	}
	v, err = s.applyHook(ctx, tr.Cast, v, state)
	if err != nil {
		return nil, err
	}
	v, err = s.applyHook(ctx, tr.Validate, v, state)
	if err != nil {
		return nil, err
	}
	return s.applyHook(ctx, tr.Parse, v, state)
}

func (s *Schema) applyHookSetting(ctx context.Context, name string, v any, state *contracts.State) (any, error) {
	h, exists := hookSetting(s.settings[name])
	if !exists {
		return v, nil
	}
	return s.applyHook(ctx, h, v, state)
}

func (s *Schema) applyHook(ctx context.Context, h contracts.Hook, v any, state *contracts.State) (any, error) {
	if h == nil {
		return v, nil
	}
	out, err := h(ctx, v, s, state)
	if err != nil {
		return nil, s.asFieldError(err, v)
	}
	return out, nil
}

// asFieldError guarantees every surfaced failure is field-attributed.
func (s *Schema) asFieldError(err error, v any) error {
	switch err.(type) {
	case *contracts.ValidationError, *contracts.ValidationErrors:
		return err
	default:
		return s.NewError(err.Error(), v)
	}
}

func hookSetting(v any) (contracts.Hook, bool) {
	switch h := v.(type) {
	case contracts.Hook:
		return h, true
	case func(context.Context, any, contracts.Field, *contracts.State) (any, error):
		return h, true
	default:
		return nil, false
	}
}

// resolveDefault produces a default value: function defaults are invoked
// with the parse state, anything else is used literally.
func resolveDefault(def any, state *contracts.State) any {
	switch d := def.(type) {
	case func(*contracts.State) any:
		return d(state)
	case func() any:
		return d()
	default:
		return d
	}
}

// isFalsy mirrors the loose emptiness the pipeline keys defaults and
// required checks on: nil, false, empty string, and numeric zero or NaN.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	default:
		return false
	}
}

func isTruthy(v any) bool {
	return !isFalsy(v)
}
