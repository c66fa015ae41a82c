package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/devtin/schema-validator/contracts"
	"github.com/devtin/schema-validator/internal/maputil"
	"github.com/devtin/schema-validator/transformers"
)

// nestedTypeName is the sentinel type name reported by branch nodes.
const nestedTypeName = "Schema"

var (
	// ErrRequiredAndDefault rejects a leaf declaring both required and a
	// default: a default implies the property is optional.
	ErrRequiredAndDefault = errors.New("required properties can not have a default value")

	// ErrInvalidDefinition rejects definitions the builder cannot interpret.
	ErrInvalidDefinition = errors.New("invalid schema definition")
)

// Method is a named callable operation attached to parsed results. Methods
// are stored on the tree and exposed via Methods; invoking them is up to the
// host application.
type Method func(result any, args ...any) any

// Prop is one named property of an ordered branch definition.
type Prop struct {
	Name string
	Def  any
}

// Props is a branch definition with explicit declaration order, for callers
// that need ordering guarantees a Go map cannot give.
type Props []Prop

// Schema is one node of the schema tree: a leaf carrying a resolved type and
// settings, or a branch carrying named children. The tree is immutable in
// shape after construction; Clone produces an independent copy.
type Schema struct {
	name      string
	parent    *Schema
	typeNames []string
	settings  map[string]any
	children  []*Schema

	// transformer is cached at construction when the type is already
	// registered; late-registered types are looked up on every parse.
	transformer *transformers.Transformer

	// sub is the item schema built from an arraySchema or mapSchema setting.
	sub *Schema

	// defaultValue is the schema-level default bound to this node via the
	// WithDefaultValues build option.
	defaultValue    any
	hasDefaultValue bool

	methods  map[string]Method
	registry *transformers.Registry
	logger   *slog.Logger
}

type buildOptions struct {
	name          string
	settings      map[string]any
	methods       map[string]Method
	defaultValues map[string]any
	registry      *transformers.Registry
	logger        *slog.Logger
}

// BuildOption configures schema construction.
type BuildOption func(*buildOptions)

// WithName overrides the root node's name.
func WithName(name string) BuildOption {
	return func(o *buildOptions) { o.name = name }
}

// WithSettings merges settings over the root node's own; for branch roots
// this is where schema-level cast and validate hooks live.
func WithSettings(settings map[string]any) BuildOption {
	return func(o *buildOptions) { o.settings = settings }
}

// WithMethods attaches named operations to the tree.
func WithMethods(methods map[string]Method) BuildOption {
	return func(o *buildOptions) { o.methods = methods }
}

// WithDefaultValues binds schema-level defaults, keyed by dotted path,
// substituted for absent sub-values before per-field defaults apply.
func WithDefaultValues(values map[string]any) BuildOption {
	return func(o *buildOptions) { o.defaultValues = values }
}

// WithRegistry resolves types against a private registry instead of the
// process-wide one.
func WithRegistry(registry *transformers.Registry) BuildOption {
	return func(o *buildOptions) { o.registry = registry }
}

// WithLogger sets the logger used for parse debug records.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(o *buildOptions) { o.logger = logger }
}

// New builds a schema tree from a definition value. Construction validates
// schema shape only, never data: contradictory settings and uninterpretable
// definitions fail here, type coercion failures surface at parse time.
func New(definition any, opts ...BuildOption) (*Schema, error) {
	bo := &buildOptions{}
	for _, opt := range opts {
		opt(bo)
	}
	if bo.registry == nil {
		bo.registry = transformers.Default()
	}
	if bo.logger == nil {
		bo.logger = slog.Default()
	}

	root, err := build(bo, definition, bo.name, nil, bo.settings)
	if err != nil {
		return nil, err
	}
	root.methods = bo.methods

	for path, dv := range bo.defaultValues {
		node := root.at(path)
		if node == nil {
			return nil, fmt.Errorf("%w: defaultValues path %s does not exist", ErrInvalidDefinition, path)
		}
		node.defaultValue = dv
		node.hasDefaultValue = true
	}

	return root, nil
}

// MustNew builds a schema tree and panics on a construction error. Intended
// for package-level schema variables.
func MustNew(definition any, opts ...BuildOption) *Schema {
	s, err := New(definition, opts...)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}

func build(bo *buildOptions, def any, name string, parent *Schema, extra map[string]any) (*Schema, error) {
	switch d := def.(type) {
	case *Schema:
		node := d.cloneInto(name, parent)
		node.registry = bo.registry
		node.logger = bo.logger
		mergeSettings(node.settings, extra)
		if err := node.checkSettings(); err != nil {
			return nil, err
		}
		return node, nil

	case Props:
		node := newNode(bo, name, parent, cloneMap(extra))
		node.children = make([]*Schema, 0, len(d))
		seen := make(map[string]bool, len(d))
		for _, p := range d {
			if p.Name == "" {
				return nil, fmt.Errorf("%w: empty property name under %s", ErrInvalidDefinition, name)
			}
			if seen[p.Name] {
				return nil, fmt.Errorf("%w: duplicate property %s", ErrInvalidDefinition, p.Name)
			}
			seen[p.Name] = true

			child, err := build(bo, p.Def, p.Name, node, nil)
			if err != nil {
				return nil, err
			}
			node.children = append(node.children, child)
		}
		return node, nil

	case map[string]any:
		if typeRef, isLeaf := d["type"]; isLeaf {
			settings := make(map[string]any, len(d)-1)
			for k, v := range d {
				if k != "type" {
					settings[k] = v
				}
			}
			mergeSettings(settings, extra)
			return buildLeaf(bo, typeRef, name, parent, settings)
		}

		// Plain mapping without a type key: branch with children in
		// sorted-name order.
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		props := make(Props, 0, len(keys))
		for _, k := range keys {
			props = append(props, Prop{Name: k, Def: d[k]})
		}
		return build(bo, props, name, parent, extra)

	case string:
		return buildLeaf(bo, d, name, parent, cloneMap(extra))

	case []any, []string:
		return buildLeaf(bo, def, name, parent, cloneMap(extra))

	case nil:
		return nil, fmt.Errorf("%w: nil definition", ErrInvalidDefinition)

	default:
		return nil, fmt.Errorf("%w: unsupported definition %T", ErrInvalidDefinition, def)
	}
}

func buildLeaf(bo *buildOptions, typeRef any, name string, parent *Schema, settings map[string]any) (*Schema, error) {
	switch ref := typeRef.(type) {
	case *Schema:
		// An already-built schema embedded in place: adopted as a nested
		// schema with a fresh name/parent binding.
		return build(bo, ref, name, parent, settings)

	case string:
		return finishLeaf(bo, []string{ref}, name, parent, settings)

	case []string:
		if len(ref) == 0 {
			return nil, fmt.Errorf("%w: empty type list for property %s", ErrInvalidDefinition, name)
		}
		names := make([]string, len(ref))
		copy(names, ref)
		return finishLeaf(bo, names, name, parent, settings)

	case []any:
		if len(ref) == 0 {
			return nil, fmt.Errorf("%w: empty type list for property %s", ErrInvalidDefinition, name)
		}
		names := make([]string, 0, len(ref))
		for _, el := range ref {
			s, ok := el.(string)
			if !ok {
				return nil, fmt.Errorf("%w: unsupported type reference %T for property %s", ErrInvalidDefinition, el, name)
			}
			names = append(names, s)
		}
		return finishLeaf(bo, names, name, parent, settings)

	default:
		return nil, fmt.Errorf("%w: unsupported type reference %T for property %s", ErrInvalidDefinition, typeRef, name)
	}
}

func finishLeaf(bo *buildOptions, typeNames []string, name string, parent *Schema, settings map[string]any) (*Schema, error) {
	node := newNode(bo, name, parent, settings)
	node.typeNames = typeNames

	if len(typeNames) == 1 {
		if t, exists := bo.registry.Lookup(typeNames[0]); exists {
			node.transformer = t
			applyDefaults(node.settings, t.Settings)
		}
	}

	if err := node.checkSettings(); err != nil {
		return nil, err
	}

	if sub, exists := itemDefinition(node.settings); exists {
		// Item errors are attributed to the owning field's path.
		item, err := build(bo, sub, node.name, node.parent, nil)
		if err != nil {
			return nil, err
		}
		node.sub = item
	}

	return node, nil
}

func itemDefinition(settings map[string]any) (any, bool) {
	if sub, exists := settings["arraySchema"]; exists {
		return sub, true
	}
	if sub, exists := settings["mapSchema"]; exists {
		return sub, true
	}
	return nil, false
}

func newNode(bo *buildOptions, name string, parent *Schema, settings map[string]any) *Schema {
	if settings == nil {
		settings = make(map[string]any)
	}
	return &Schema{
		name:     name,
		parent:   parent,
		settings: settings,
		registry: bo.registry,
		logger:   bo.logger,
	}
}

func (s *Schema) checkSettings() error {
	required, _ := requiredSetting(s.settings)
	if _, hasDefault := s.settings["default"]; required && hasDefault {
		return fmt.Errorf("%w at property %s", ErrRequiredAndDefault, s.FullPath())
	}
	return nil
}

// Clone returns an independent copy of the subtree rooted at this node,
// detached from any parent. Embedding a schema inside another definition
// clones it implicitly.
func (s *Schema) Clone() *Schema {
	return s.cloneInto(s.name, nil)
}

func (s *Schema) cloneInto(name string, parent *Schema) *Schema {
	c := &Schema{
		name:            name,
		parent:          parent,
		settings:        cloneMap(s.settings),
		transformer:     s.transformer,
		defaultValue:    s.defaultValue,
		hasDefaultValue: s.hasDefaultValue,
		methods:         s.methods,
		registry:        s.registry,
		logger:          s.logger,
	}
	if s.typeNames != nil {
		c.typeNames = make([]string, len(s.typeNames))
		copy(c.typeNames, s.typeNames)
	}
	if s.children != nil {
		c.children = make([]*Schema, 0, len(s.children))
		for _, child := range s.children {
			c.children = append(c.children, child.cloneInto(child.name, c))
		}
	}
	if s.sub != nil {
		c.sub = s.sub.cloneInto(name, parent)
	}
	return c
}

// Name returns the property key of the node under its parent, empty for the
// root. Part of contracts.Field.
func (s *Schema) Name() string {
	return s.name
}

// TypeName returns the leaf's resolved type name, union members joined with
// "|", or the nested-schema sentinel for branches. Part of contracts.Field.
func (s *Schema) TypeName() string {
	if s.isBranch() {
		return nestedTypeName
	}
	if len(s.typeNames) == 1 {
		return s.typeNames[0]
	}
	return joinNames(s.typeNames)
}

// Setting returns one configuration option. Part of contracts.Field.
func (s *Schema) Setting(name string) (any, bool) {
	v, exists := s.settings[name]
	return v, exists
}

// Settings returns the node's settings map. Shared, not copied. Part of
// contracts.Field.
func (s *Schema) Settings() map[string]any {
	return s.settings
}

// SubSchema returns the item schema built from an arraySchema or mapSchema
// setting. Part of contracts.Field.
func (s *Schema) SubSchema() contracts.ValueParser {
	if s.sub == nil {
		return nil
	}
	return s.sub
}

// Children returns the node's child nodes in declaration order, nil for
// leaves.
func (s *Schema) Children() []*Schema {
	if s.children == nil {
		return nil
	}
	out := make([]*Schema, len(s.children))
	copy(out, s.children)
	return out
}

// Methods returns the named operations attached to the tree at build time.
func (s *Schema) Methods() map[string]Method {
	return s.methods
}

// NewError builds a validation error attributed to this node. Every
// field-attributed error flows through here. Part of contracts.Field.
func (s *Schema) NewError(message string, value any) *contracts.ValidationError {
	return contracts.NewValidationError(s, message, value)
}

func (s *Schema) isBranch() bool {
	return s.children != nil
}

// at resolves a dotted path to a descendant node, one segment at a time.
func (s *Schema) at(path string) *Schema {
	if path == "" {
		return s
	}
	node := s
	for _, segment := range splitPath(path) {
		node = node.SchemaAtPath(segment)
		if node == nil {
			return nil
		}
	}
	return node
}

// requiredSetting interprets the required setting: a bare truthy value, or a
// [truthy, message] pair carrying a custom error message.
func requiredSetting(settings map[string]any) (bool, string) {
	raw, exists := settings["required"]
	if !exists {
		return false, ""
	}

	items := maputil.ToSlice(raw)
	if len(items) == 0 {
		return false, ""
	}

	required := isTruthy(items[0])
	message := ""
	if len(items) > 1 {
		if m, ok := items[1].(string); ok {
			message = m
		}
	}
	return required, message
}

func mergeSettings(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

// applyDefaults fills settings the node did not set explicitly.
func applyDefaults(dst, defaults map[string]any) {
	for k, v := range defaults {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "|"
		}
		out += n
	}
	return out
}
