package schema

import "time"

// The package entry points below are the only way to obtain validators.
// Every constructor returns an immutable value: configuration methods clone,
// so a constructed validator can be shared, stored, and reused as a base for
// divergent schemas without aliasing surprises.

// String returns a validator that accepts string input.
func String() *StringValidator {
	return &StringValidator{}
}

// Number returns a validator that accepts finite numeric input of any Go
// numeric type, coerced to float64.
func Number() *NumberValidator {
	return &NumberValidator{}
}

// Boolean returns a validator that accepts exactly boolean input.
func Boolean() *BooleanValidator {
	return &BooleanValidator{}
}

// Date returns a validator that accepts time.Time input or a string that
// parses as a date.
func Date() *DateValidator {
	return &DateValidator{}
}

// Array returns a validator that accepts a sequence whose every element
// passes item. The element type of the result follows the item validator.
func Array[T any](item Validator[T]) *ArrayValidator[T] {
	return &ArrayValidator[T]{item: item}
}

// Object returns a validator that checks every field declared in fields.
// The map is copied, so mutating the caller's map afterwards does not affect
// the validator.
func Object(fields Fields) *ObjectValidator {
	copied := make(Fields, len(fields))
	for name, fv := range fields {
		copied[name] = fv
	}
	return &ObjectValidator{fields: copied}
}

var (
	_ Validator[string]         = (*StringValidator)(nil)
	_ Validator[float64]        = (*NumberValidator)(nil)
	_ Validator[bool]           = (*BooleanValidator)(nil)
	_ Validator[time.Time]      = (*DateValidator)(nil)
	_ Validator[map[string]any] = (*ObjectValidator)(nil)
	_ Validator[[]string]       = (*ArrayValidator[string])(nil)
)
