package transformers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtin/schema-validator/contracts"
)

func runStages(t *testing.T, tr *Transformer, f *testField, v any) (any, error) {
	t.Helper()
	ctx := context.Background()
	st := contracts.NewState()

	var err error
	if tr.Cast != nil {
		v, err = tr.Cast(ctx, v, f, st)
		if err != nil {
			return nil, err
		}
	}
	if tr.Validate != nil {
		v, err = tr.Validate(ctx, v, f, st)
		if err != nil {
			return nil, err
		}
	}
	return tr.Parse(ctx, v, f, st)
}

func TestStringTransformer(t *testing.T) {
	tr := newStringTransformer()

	t.Run("accepts plain strings", func(t *testing.T) {
		out, err := runStages(t, tr, &testField{name: "name"}, "Martin")

		assert.NoError(t, err)
		assert.Equal(t, "Martin", out)
	})

	t.Run("rejects non-strings without autoCast", func(t *testing.T) {
		_, err := runStages(t, tr, &testField{name: "name"}, 1)

		require.Error(t, err)
		assert.Equal(t, "Invalid string", err.Error())
	})

	t.Run("autoCast coerces numbers", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"autoCast": true}}

		out, err := runStages(t, tr, f, 1)

		assert.NoError(t, err)
		assert.Equal(t, "1", out)
	})

	t.Run("minlength is enforced", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"minlength": 6}}

		_, err := runStages(t, tr, f, "Tin")

		require.Error(t, err)
		assert.Equal(t, "Invalid minlength", err.Error())
	})

	t.Run("maxlength is enforced", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"maxlength": 3}}

		_, err := runStages(t, tr, f, "Martin")

		require.Error(t, err)
		assert.Equal(t, "Invalid maxlength", err.Error())
	})

	t.Run("regex is enforced", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"regex": "^[a-z]+$"}}

		_, err := runStages(t, tr, f, "Martin")

		require.Error(t, err)
		assert.Equal(t, "Invalid regex", err.Error())
	})

	t.Run("enum rejects unknown options", func(t *testing.T) {
		f := &testField{name: "state", settings: map[string]any{"enum": []string{"north", "south"}}}

		_, err := runStages(t, tr, f, "east")

		require.Error(t, err)
		assert.Equal(t, "Unknown enum option east", err.Error())
	})

	t.Run("enum accepts known options", func(t *testing.T) {
		f := &testField{name: "state", settings: map[string]any{"enum": []string{"north", "south"}}}

		out, err := runStages(t, tr, f, "south")

		assert.NoError(t, err)
		assert.Equal(t, "south", out)
	})

	t.Run("allowEmpty false rejects empty strings", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"allowEmpty": false}}

		_, err := runStages(t, tr, f, "")

		require.Error(t, err)
		assert.Equal(t, "Value can not be empty", err.Error())
	})

	t.Run("empty strings pass by default", func(t *testing.T) {
		out, err := runStages(t, tr, &testField{name: "name"}, "")

		assert.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("lowercase sanitizes the result", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"lowercase": true}}

		out, err := runStages(t, tr, f, "MARTIN")

		assert.NoError(t, err)
		assert.Equal(t, "martin", out)
	})

	t.Run("uppercase sanitizes the result", func(t *testing.T) {
		f := &testField{name: "name", settings: map[string]any{"uppercase": true}}

		out, err := runStages(t, tr, f, "Martin")

		assert.NoError(t, err)
		assert.Equal(t, "MARTIN", out)
	})
}
