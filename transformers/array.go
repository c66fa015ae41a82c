package transformers

import (
	"context"

	"github.com/devtin/schema-validator/contracts"
)

// Array accepts slice values. With an arraySchema setting every element is
// run through the item schema built at leaf construction time; an element
// failure short-circuits the field with that element's error.
func newArrayTransformer() *Transformer {
	return &Transformer{
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			items, ok := v.([]any)
			if !ok {
				return nil, f.NewError("Invalid array", v)
			}

			sub := f.SubSchema()
			if sub == nil {
				return items, nil
			}

			out := make([]any, len(items))
			for i, item := range items {
				parsed, err := sub.ParseValue(ctx, item, st)
				if err != nil {
					return nil, err
				}
				out[i] = parsed
			}
			return out, nil
		},
	}
}
