package transformers

import (
	"github.com/mitchellh/mapstructure"

	"github.com/devtin/schema-validator/contracts"
)

// decodeSettings decodes a field's settings map into a typed settings struct.
// Decoding is weakly typed so YAML- and JSON-sourced definitions (ints vs
// floats, "true" vs true) map onto the same struct.
func decodeSettings(f contracts.Field, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(f.Settings())
}

// boolSetting resolves an optional bool setting with a default.
func boolSetting(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
