package schema

// BooleanValidator validates that input is exactly a boolean. There is no
// truthy/falsy coercion of numbers, strings, or other values, and no
// additional rules apply to booleans.
type BooleanValidator struct {
	base[bool]
}

func (v *BooleanValidator) checkType(value any) (bool, *Error) {
	b, ok := value.(bool)
	if !ok {
		return false, newError("Value must be a boolean")
	}
	return b, nil
}

// Validate checks value against the configured constraints.
func (v *BooleanValidator) Validate(value any) Result[bool] {
	return v.base.validate(value, v.checkType)
}

// ValidateAny implements AnyValidator.
func (v *BooleanValidator) ValidateAny(value any) Result[any] {
	return erase(v.Validate(value))
}

// Optional returns a copy that accepts nil input as trivially valid.
func (v *BooleanValidator) Optional() *BooleanValidator {
	return &BooleanValidator{base: v.base.asOptional()}
}

// WithMessage returns a copy whose type-check failure reports msg instead of
// the default message.
func (v *BooleanValidator) WithMessage(msg string) *BooleanValidator {
	return &BooleanValidator{base: v.base.withMessage(msg)}
}
