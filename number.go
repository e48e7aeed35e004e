package schema

import (
	"fmt"
	"math"
)

// NumberValidator validates that input is a finite numeric value and applies
// range constraints to it. Every Go numeric input is coerced to float64, the
// natural carrier for JSON-shaped data.
type NumberValidator struct {
	base[float64]
}

func (v *NumberValidator) checkType(value any) (float64, *Error) {
	f, ok := toFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, newError("Value must be a valid number")
	}
	return f, nil
}

// Validate checks value against the configured constraints.
func (v *NumberValidator) Validate(value any) Result[float64] {
	return v.base.validate(value, v.checkType)
}

// ValidateAny implements AnyValidator.
func (v *NumberValidator) ValidateAny(value any) Result[any] {
	return erase(v.Validate(value))
}

// Optional returns a copy that accepts nil input as trivially valid.
func (v *NumberValidator) Optional() *NumberValidator {
	return &NumberValidator{base: v.base.asOptional()}
}

// WithMessage returns a copy whose type-check failure reports msg instead of
// the default message.
func (v *NumberValidator) WithMessage(msg string) *NumberValidator {
	return &NumberValidator{base: v.base.withMessage(msg)}
}

// Min requires the number to be at least bound (inclusive).
func (v *NumberValidator) Min(bound float64, msg ...string) *NumberValidator {
	m := override(fmt.Sprintf("Number must be at least %v", bound), msg)
	return &NumberValidator{base: v.base.withRule(func(f float64) *Error {
		if f < bound {
			return newError(m)
		}
		return nil
	})}
}

// Max requires the number to be at most bound (inclusive).
func (v *NumberValidator) Max(bound float64, msg ...string) *NumberValidator {
	m := override(fmt.Sprintf("Number must be at most %v", bound), msg)
	return &NumberValidator{base: v.base.withRule(func(f float64) *Error {
		if f > bound {
			return newError(m)
		}
		return nil
	})}
}

// Positive requires the number to be strictly greater than zero.
func (v *NumberValidator) Positive(msg ...string) *NumberValidator {
	m := override("Number must be positive", msg)
	return &NumberValidator{base: v.base.withRule(func(f float64) *Error {
		if f <= 0 {
			return newError(m)
		}
		return nil
	})}
}

// Negative requires the number to be strictly less than zero.
func (v *NumberValidator) Negative(msg ...string) *NumberValidator {
	m := override("Number must be negative", msg)
	return &NumberValidator{base: v.base.withRule(func(f float64) *Error {
		if f >= 0 {
			return newError(m)
		}
		return nil
	})}
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
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
