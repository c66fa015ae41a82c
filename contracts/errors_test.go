package contracts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("Error returns the plain message", func(t *testing.T) {
		err := NewValidationError(nil, "Property name is required", nil)

		assert.Equal(t, "Property name is required", err.Error())
	})

	t.Run("NewValidationError keeps the offending value", func(t *testing.T) {
		err := NewValidationError(nil, "Invalid number", "abc")

		assert.Equal(t, "abc", err.Value)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("Error returns the composite message only", func(t *testing.T) {
		child := NewValidationError(nil, "Invalid number", nil)
		err := NewValidationErrors(nil, "Data is not valid", []error{child}, nil)

		assert.Equal(t, "Data is not valid", err.Error())
	})

	t.Run("Unwrap exposes children to errors.Is", func(t *testing.T) {
		child := NewValidationError(nil, "Invalid number", nil)
		err := NewValidationErrors(nil, "Data is not valid", []error{child}, nil)

		assert.True(t, errors.Is(err, child))
	})

	t.Run("Flatten descends into nested composites in order", func(t *testing.T) {
		a := NewValidationError(nil, "a", nil)
		b := NewValidationError(nil, "b", nil)
		c := NewValidationError(nil, "c", nil)
		inner := NewValidationErrors(nil, "Data is not valid", []error{b, c}, nil)
		outer := NewValidationErrors(nil, "Data is not valid", []error{a, inner}, nil)

		flat := outer.Flatten()

		assert.Len(t, flat, 3)
		assert.Equal(t, "a", flat[0].Message)
		assert.Equal(t, "b", flat[1].Message)
		assert.Equal(t, "c", flat[2].Message)
	})
}
