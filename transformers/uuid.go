package transformers

import (
	"context"

	"github.com/google/uuid"

	"github.com/devtin/schema-validator/contracts"
)

// UUID accepts canonical UUID strings and uuid.UUID values, sanitizing both
// to the lowercase canonical string form.
func newUUIDTransformer() *Transformer {
	return &Transformer{
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			switch u := v.(type) {
			case uuid.UUID:
				return u.String(), nil
			case string:
				parsed, err := uuid.Parse(u)
				if err != nil {
					return nil, f.NewError("Invalid uuid", v)
				}
				return parsed.String(), nil
			default:
				return nil, f.NewError("Invalid uuid", v)
			}
		},
	}
}
