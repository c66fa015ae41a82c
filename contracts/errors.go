package contracts

// ValidationError is a single field-level validation failure. It carries the
// message, the offending value, and the schema node that raised it, so every
// error surfaced to a caller can be traced back to exactly one node via
// Field.FullPath().
type ValidationError struct {
	Message string
	Value   any
	Field   Field
}

// NewValidationError creates a field-attributed validation error.
func NewValidationError(field Field, message string, value any) *ValidationError {
	return &ValidationError{
		Message: message,
		Value:   value,
		Field:   field,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the composite error raised by branch nodes: one message
// describing the failure class plus the ordered list of child errors, sorted
// by schema declaration order rather than completion order.
type ValidationErrors struct {
	Message string
	Errors  []error
	Value   any
	Field   Field
}

// NewValidationErrors creates a composite validation error.
func NewValidationErrors(field Field, message string, errs []error, value any) *ValidationErrors {
	return &ValidationErrors{
		Message: message,
		Errors:  errs,
		Value:   value,
		Field:   field,
	}
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	return e.Message
}

// Unwrap exposes the child errors to errors.Is and errors.As.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

// Flatten returns the leaf errors of the composite in order, descending into
// nested composites.
func (e *ValidationErrors) Flatten() []*ValidationError {
	var out []*ValidationError
	for _, err := range e.Errors {
		switch v := err.(type) {
		case *ValidationError:
			out = append(out, v)
		case *ValidationErrors:
			out = append(out, v.Flatten()...)
		}
	}
	return out
}
