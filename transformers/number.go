package transformers

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"

	"github.com/devtin/schema-validator/contracts"
)

type numberSettings struct {
	AutoCast      bool     `mapstructure:"autoCast"`
	Min           *float64 `mapstructure:"min"`
	Max           *float64 `mapstructure:"max"`
	Integer       bool     `mapstructure:"integer"`
	DecimalPlaces *int     `mapstructure:"decimalPlaces"`
}

func newNumberTransformer() *Transformer {
	return &Transformer{
		Cast: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg numberSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}
			if !cfg.AutoCast {
				return v, nil
			}
			if _, ok := asFloat(v); ok {
				return v, nil
			}
			n, err := cast.ToFloat64E(v)
			if err != nil {
				return nil, f.NewError("Invalid number", v)
			}
			return n, nil
		},
		Validate: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg numberSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}

			n, ok := asFloat(v)
			if !ok || math.IsNaN(n) {
				return nil, f.NewError("Invalid number", v)
			}
			if cfg.Integer && n != math.Trunc(n) {
				return nil, f.NewError("Invalid integer", v)
			}
			if cfg.Min != nil && n < *cfg.Min {
				return nil, f.NewError(fmt.Sprintf("minimum accepted value is %s", formatNumber(*cfg.Min)), v)
			}
			if cfg.Max != nil && n > *cfg.Max {
				return nil, f.NewError(fmt.Sprintf("maximum accepted value is %s", formatNumber(*cfg.Max)), v)
			}
			return v, nil
		},
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg numberSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}

			n, ok := asFloat(v)
			if !ok {
				return nil, f.NewError("Invalid number", v)
			}
			if cfg.DecimalPlaces != nil {
				factor := math.Pow10(*cfg.DecimalPlaces)
				n = math.Round(n*factor) / factor
			}
			return n, nil
		},
	}
}

// asFloat widens any native numeric kind to float64 without parsing strings.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// formatNumber prints a bound without a trailing fraction for whole values,
// so "minimum accepted value is 0" rather than "... is 0.000000".
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
