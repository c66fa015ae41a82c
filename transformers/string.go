package transformers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"github.com/devtin/schema-validator/contracts"
)

type stringSettings struct {
	AutoCast   bool     `mapstructure:"autoCast"`
	MinLength  *int     `mapstructure:"minlength"`
	MaxLength  *int     `mapstructure:"maxlength"`
	Regex      string   `mapstructure:"regex"`
	Enum       []string `mapstructure:"enum"`
	Lowercase  bool     `mapstructure:"lowercase"`
	Uppercase  bool     `mapstructure:"uppercase"`
	AllowEmpty *bool    `mapstructure:"allowEmpty"`
}

func newStringTransformer() *Transformer {
	return &Transformer{
		Cast: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg stringSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}
			if !cfg.AutoCast {
				return v, nil
			}
			if _, ok := v.(string); ok {
				return v, nil
			}
			s, err := cast.ToStringE(v)
			if err != nil {
				return nil, f.NewError("Invalid string", v)
			}
			return s, nil
		},
		Validate: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg stringSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}

			s, ok := v.(string)
			if !ok {
				return nil, f.NewError("Invalid string", v)
			}
			if !boolSetting(cfg.AllowEmpty, true) && s == "" {
				return nil, f.NewError("Value can not be empty", v)
			}
			if cfg.MinLength != nil && len(s) < *cfg.MinLength {
				return nil, f.NewError("Invalid minlength", v)
			}
			if cfg.MaxLength != nil && len(s) > *cfg.MaxLength {
				return nil, f.NewError("Invalid maxlength", v)
			}
			if cfg.Regex != "" {
				re, err := regexp.Compile(cfg.Regex)
				if err != nil {
					return nil, f.NewError(fmt.Sprintf("Invalid regex pattern %s", cfg.Regex), v)
				}
				if !re.MatchString(s) {
					return nil, f.NewError("Invalid regex", v)
				}
			}
			if len(cfg.Enum) > 0 && !containsString(cfg.Enum, s) {
				return nil, f.NewError(fmt.Sprintf("Unknown enum option %s", s), v)
			}
			return v, nil
		},
		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
			var cfg stringSettings
			if err := decodeSettings(f, &cfg); err != nil {
				return nil, err
			}

			s, ok := v.(string)
			if !ok {
				return nil, f.NewError("Invalid string", v)
			}
			if cfg.Lowercase {
				s = strings.ToLower(s)
			}
			if cfg.Uppercase {
				s = strings.ToUpper(s)
			}
			return s, nil
		},
	}
}

func containsString(list []string, s string) bool {
	for _, el := range list {
		if el == s {
			return true
		}
	}
	return false
}
