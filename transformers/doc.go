// Package transformers provides the transformer registry and the built-in
// transformer set of the schema validator.
//
// A transformer is the pluggable capability performing coercion and
// validation for one type name: an optional cast hook for lenient input
// coercion, an optional validate hook, a required parse hook performing the
// final coercion, an optional loader chain run before the type's own stages,
// and optional default settings merged under every leaf of that type.
//
// Built-in transformers (String, Number, Boolean, Date, Array, Object, UUID)
// are registered on the package-level registry at import time. Host
// applications register custom types with Register before any parse begins;
// concurrent registration during active parses is not supported.
//
// Registering a custom type:
//
//	transformers.MustRegister("Email", &transformers.Transformer{
//		Loaders: []string{"String"},
//		Parse: func(ctx context.Context, v any, f contracts.Field, st *contracts.State) (any, error) {
//			s := v.(string)
//			if !strings.Contains(s, "@") {
//				return nil, f.NewError("Invalid e-mail address", v)
//			}
//			return s, nil
//		},
//	})
package transformers
