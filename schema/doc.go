// Package schema implements the schema tree and its parse pipeline.
//
// A schema is built once from a definition value and then fed arbitrary
// untrusted values; parsing returns a sanitized, type-conforming value or a
// composite validation error listing every field failure. A definition is
// either a branch (a mapping of property names to nested definitions, or an
// ordered Props list) or a leaf (a type name, a map carrying a "type"
// key plus settings, a list of type names, or an already-built *Schema
// adopted as a nested schema).
//
// Building and parsing:
//
//	user, err := schema.New(schema.Props{
//		{Name: "name", Def: map[string]any{"type": "String", "required": true}},
//		{Name: "birthday", Def: "Date"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sanitized, err := user.Parse(ctx, payload)
//	var verrs *contracts.ValidationErrors
//	if errors.As(err, &verrs) {
//		for _, e := range verrs.Flatten() {
//			log.Printf("%s: %s", e.Field.FullPath(), e.Message)
//		}
//	}
//
// Map-based branch definitions order their children by sorted property name;
// use Props (or a YAML definition) when declaration order matters.
//
// The parse pipeline is synchronous; hooks receive the caller's context and
// may block, which suspends the parse. Child fields of a branch are parsed
// in declaration order and the composite error list always follows that
// order.
package schema
