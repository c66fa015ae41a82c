package transformers

import (
	"context"
	"sort"

	"github.com/devtin/schema-validator/contracts"
)

// Object accepts free-form map values. With a mapSchema setting every value
// of the map is run through the item schema; keys are visited in sorted
// order so failures are deterministic.
func newObjectTransformer() *Transformer {
	return &Transformer{
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			m, ok := v.(map[string]any)
			if !ok {
				return nil, f.NewError("Invalid object", v)
			}

			sub := f.SubSchema()
			if sub == nil {
				return m, nil
			}

			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			out := make(map[string]any, len(m))
			for _, k := range keys {
				parsed, err := sub.ParseValue(ctx, m[k], st)
				if err != nil {
					return nil, err
				}
				out[k] = parsed
			}
			return out, nil
		},
	}
}
