package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("a bare type name is leaf shorthand", func(t *testing.T) {
		s, err := New("String")

		require.NoError(t, err)
		assert.Equal(t, "String", s.TypeName())
		assert.Nil(t, s.Children())
	})

	t.Run("a map with a type key is a leaf definition", func(t *testing.T) {
		s, err := New(map[string]any{"type": "String", "required": true})

		require.NoError(t, err)
		assert.Equal(t, "String", s.TypeName())
		v, exists := s.Setting("required")
		assert.True(t, exists)
		assert.Equal(t, true, v)
		_, hasType := s.Setting("type")
		assert.False(t, hasType, "type must never leak into settings")
	})

	t.Run("a map without a type key is a branch", func(t *testing.T) {
		s, err := New(map[string]any{
			"name":  "String",
			"email": "String",
		})

		require.NoError(t, err)
		assert.Equal(t, "Schema", s.TypeName())
		assert.Len(t, s.Children(), 2)
	})

	t.Run("map branches order children by sorted name", func(t *testing.T) {
		s, err := New(map[string]any{
			"zeta":  "String",
			"alpha": "String",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "zeta"}, s.OwnPaths())
	})

	t.Run("Props branches keep declaration order", func(t *testing.T) {
		s, err := New(Props{
			{Name: "title", Def: "String"},
			{Name: "body", Def: "String"},
			{Name: "published", Def: "Date"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"title", "body", "published"}, s.OwnPaths())
	})

	t.Run("a type list builds a union leaf", func(t *testing.T) {
		s, err := New([]string{"Number", "String"})

		require.NoError(t, err)
		assert.Equal(t, "Number|String", s.TypeName())
	})

	t.Run("required with default fails construction", func(t *testing.T) {
		_, err := New(map[string]any{
			"name": map[string]any{"type": "String", "required": true, "default": "x"},
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequiredAndDefault)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("required pair with default fails construction", func(t *testing.T) {
		_, err := New(map[string]any{
			"type":     "String",
			"required": []any{true, "give me a name"},
			"default":  "x",
		}, WithName("name"))

		assert.ErrorIs(t, err, ErrRequiredAndDefault)
	})

	t.Run("required false with default is allowed", func(t *testing.T) {
		_, err := New(map[string]any{"type": "String", "required": false, "default": "x"})

		assert.NoError(t, err)
	})

	t.Run("nil definitions are rejected", func(t *testing.T) {
		_, err := New(nil)

		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("duplicate property names are rejected", func(t *testing.T) {
		_, err := New(Props{
			{Name: "name", Def: "String"},
			{Name: "name", Def: "String"},
		})

		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("empty type lists are rejected", func(t *testing.T) {
		_, err := New([]string{})

		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("unknown defaultValues paths are rejected", func(t *testing.T) {
		_, err := New(
			map[string]any{"name": "String"},
			WithDefaultValues(map[string]any{"phone": "555"}),
		)

		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("methods are stored on the tree", func(t *testing.T) {
		s, err := New(
			map[string]any{"name": "String"},
			WithMethods(map[string]Method{
				"greet": func(result any, args ...any) any { return "hi" },
			}),
		)

		require.NoError(t, err)
		assert.Contains(t, s.Methods(), "greet")
	})
}

func TestNestedSchemas(t *testing.T) {
	t.Run("an embedded schema is adopted with a new binding", func(t *testing.T) {
		address, err := New(map[string]any{
			"line1": "String",
			"zip":   "Number",
		})
		require.NoError(t, err)

		user, err := New(Props{
			{Name: "name", Def: "String"},
			{Name: "address", Def: address},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "address.line1", "address.zip"}, user.Paths())

		// The original stays detached.
		assert.Equal(t, "", address.FullPath())
		assert.Equal(t, "address", user.SchemaAtPath("address").FullPath())
	})

	t.Run("embedding through a definition map merges settings", func(t *testing.T) {
		inner, err := New(map[string]any{"type": "String"})
		require.NoError(t, err)

		s, err := New(map[string]any{
			"nickname": map[string]any{"type": inner, "required": true},
		})
		require.NoError(t, err)

		child := s.SchemaAtPath("nickname")
		require.NotNil(t, child)
		v, _ := child.Setting("required")
		assert.Equal(t, true, v)
	})

	t.Run("Clone detaches an independent copy", func(t *testing.T) {
		s := MustNew(map[string]any{"name": "String"}, WithName("user"))

		c := s.Clone()

		assert.Equal(t, "user", c.Name())
		assert.Equal(t, s.Paths(), c.Paths())
		require.NotNil(t, c.SchemaAtPath("name"))
		assert.NotSame(t, s.SchemaAtPath("name"), c.SchemaAtPath("name"))
	})
}

func TestMustNew(t *testing.T) {
	t.Run("MustNew panics on construction errors", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(map[string]any{"type": "String", "required": true, "default": "x"})
		})
	})
}
