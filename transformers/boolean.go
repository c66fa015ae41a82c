package transformers

import (
	"context"

	"github.com/spf13/cast"

	"github.com/devtin/schema-validator/contracts"
)

type booleanSettings struct {
	AutoCast bool `mapstructure:"autoCast"`
}

func newBooleanTransformer() *Transformer {
	return &Transformer{
		Cast: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg booleanSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}
			if !cfg.AutoCast {
				return v, nil
			}
			if _, ok := v.(bool); ok {
				return v, nil
			}
			b, err := cast.ToBoolE(v)
			if err != nil {
				return nil, f.NewError("Invalid boolean", v)
			}
			return b, nil
		},
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			b, ok := v.(bool)
			if !ok {
				return nil, f.NewError("Invalid boolean", v)
			}
			return b, nil
		},
	}
}
