package schemavalidator

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSON decodes a JSON payload and runs it through the schema's parse
// pipeline. Objects decode to map[string]any, arrays to []any, numbers to
// float64, matching what the built-in transformers expect.
func ParseJSON(ctx context.Context, s *Schema, payload []byte, opts ...ParseOption) (any, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("invalid JSON payload")
	}
	return s.Parse(ctx, gjson.ParseBytes(payload).Value(), opts...)
}
