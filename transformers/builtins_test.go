package transformers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtin/schema-validator/contracts"
)

func TestBooleanTransformer(t *testing.T) {
	tr := newBooleanTransformer()

	t.Run("accepts booleans", func(t *testing.T) {
		out, err := runStages(t, tr, &testField{name: "active"}, true)

		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("rejects non-booleans without autoCast", func(t *testing.T) {
		_, err := runStages(t, tr, &testField{name: "active"}, "true")

		require.Error(t, err)
		assert.Equal(t, "Invalid boolean", err.Error())
	})

	t.Run("autoCast coerces common truthy forms", func(t *testing.T) {
		f := &testField{name: "active", settings: map[string]any{"autoCast": true}}

		out, err := runStages(t, tr, f, "true")

		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})
}

func TestDateTransformer(t *testing.T) {
	tr := newDateTransformer()

	t.Run("accepts time values", func(t *testing.T) {
		now := time.Now()

		out, err := runStages(t, tr, &testField{name: "published"}, now)

		assert.NoError(t, err)
		assert.Equal(t, now, out)
	})

	t.Run("parses date strings by default", func(t *testing.T) {
		out, err := runStages(t, tr, &testField{name: "published"}, "2020-06-11")

		require.NoError(t, err)
		d, ok := out.(time.Time)
		require.True(t, ok)
		assert.Equal(t, 2020, d.Year())
		assert.Equal(t, time.June, d.Month())
	})

	t.Run("rejects unparseable strings", func(t *testing.T) {
		_, err := runStages(t, tr, &testField{name: "published"}, "not a date")

		require.Error(t, err)
		assert.Equal(t, "Invalid date", err.Error())
	})

	t.Run("autoCast off rejects strings", func(t *testing.T) {
		f := &testField{name: "published", settings: map[string]any{"autoCast": false}}

		_, err := runStages(t, tr, f, "2020-06-11")

		require.Error(t, err)
		assert.Equal(t, "Invalid date", err.Error())
	})
}

func TestUUIDTransformer(t *testing.T) {
	tr := newUUIDTransformer()

	t.Run("sanitizes canonical strings to lowercase", func(t *testing.T) {
		out, err := runStages(t, tr, &testField{name: "id"}, "4E60E251-2A8A-4966-A775-E7ECEFD757B7")

		assert.NoError(t, err)
		assert.Equal(t, "4e60e251-2a8a-4966-a775-e7ecefd757b7", out)
	})

	t.Run("accepts uuid values", func(t *testing.T) {
		id := uuid.New()

		out, err := runStages(t, tr, &testField{name: "id"}, id)

		assert.NoError(t, err)
		assert.Equal(t, id.String(), out)
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := runStages(t, tr, &testField{name: "id"}, "not-a-uuid")

		require.Error(t, err)
		assert.Equal(t, "Invalid uuid", err.Error())
	})
}

// itemParser doubles every element it sees, standing in for an item schema.
type itemParser struct {
	fail bool
}

func (p *itemParser) ParseValue(ctx context.Context, v any, st *contracts.State) (any, error) {
	if p.fail {
		return nil, contracts.NewValidationError(nil, "Invalid number", v)
	}
	n, _ := v.(int)
	return n * 2, nil
}

func TestArrayTransformer(t *testing.T) {
	tr := newArrayTransformer()

	t.Run("accepts slices without an item schema", func(t *testing.T) {
		out, err := runStages(t, tr, &testField{name: "tags"}, []any{"a", "b"})

		assert.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, out)
	})

	t.Run("rejects non-slices", func(t *testing.T) {
		_, err := runStages(t, tr, &testField{name: "tags"}, "a")

		require.Error(t, err)
		assert.Equal(t, "Invalid array", err.Error())
	})

	t.Run("runs every element through the item schema", func(t *testing.T) {
		f := &testField{name: "nums", sub: &itemParser{}}

		out, err := runStages(t, tr, f, []any{1, 2, 3})

		assert.NoError(t, err)
		assert.Equal(t, []any{2, 4, 6}, out)
	})

	t.Run("an element failure short-circuits the field", func(t *testing.T) {
		f := &testField{name: "nums", sub: &itemParser{fail: true}}

		_, err := runStages(t, tr, f, []any{1})

		require.Error(t, err)
		assert.Equal(t, "Invalid number", err.Error())
	})
}

func TestObjectTransformer(t *testing.T) {
	tr := newObjectTransformer()

	t.Run("accepts free-form maps", func(t *testing.T) {
		m := map[string]any{"anything": 1}

		out, err := runStages(t, tr, &testField{name: "meta"}, m)

		assert.NoError(t, err)
		assert.Equal(t, m, out)
	})

	t.Run("rejects non-maps", func(t *testing.T) {
		_, err := runStages(t, tr, &testField{name: "meta"}, 1)

		require.Error(t, err)
		assert.Equal(t, "Invalid object", err.Error())
	})

	t.Run("runs every value through the map schema", func(t *testing.T) {
		f := &testField{name: "scores", sub: &itemParser{}}

		out, err := runStages(t, tr, f, map[string]any{"a": 1, "b": 2})

		assert.NoError(t, err)
		assert.Equal(t, map[string]any{"a": 2, "b": 4}, out)
	})
}
