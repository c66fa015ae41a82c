package transformers

func init() {
	MustRegister("String", newStringTransformer())
	MustRegister("Number", newNumberTransformer())
	MustRegister("Boolean", newBooleanTransformer())
	MustRegister("Date", newDateTransformer())
	MustRegister("Array", newArrayTransformer())
	MustRegister("Object", newObjectTransformer())
	MustRegister("UUID", newUUIDTransformer())
}
