package transformers

import (
	"context"
	"time"

	"github.com/spf13/cast"

	"github.com/devtin/schema-validator/contracts"
)

type dateSettings struct {
	AutoCast *bool `mapstructure:"autoCast"`
}

// Date accepts time.Time values; with autoCast (the default) it additionally
// parses common date/time string layouts and unix-second numbers.
func newDateTransformer() *Transformer {
	return &Transformer{
		Settings: map[string]any{
			"autoCast": true,
		},
		Cast: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg dateSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}
			if !boolSetting(cfg.AutoCast, true) {
				return v, nil
			}
			if _, ok := v.(time.Time); ok {
				return v, nil
			}
			d, err := cast.ToTimeE(v)
			if err != nil {
				return nil, f.NewError("Invalid date", v)
			}
			return d, nil
		},
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			d, ok := v.(time.Time)
			if !ok {
				return nil, f.NewError("Invalid date", v)
			}
			return d, nil
		},
	}
}
