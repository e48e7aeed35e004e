package schema

import (
	"fmt"
	"time"
)

// dateLayouts are tried in order when a string input is offered as a date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateValidator validates that input is a time.Time or a string parseable as
// one, and applies inclusive range constraints compared by timestamp. String
// inputs are coerced: a successful Validate returns the parsed time.Time,
// not the original string.
type DateValidator struct {
	base[time.Time]
	min *time.Time
	max *time.Time
}

func (v *DateValidator) checkType(value any) (time.Time, *Error) {
	switch d := value.(type) {
	case time.Time:
		return d, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, newError("Value must be a valid date")
}

// Validate checks value against the configured constraints.
func (v *DateValidator) Validate(value any) Result[time.Time] {
	return v.base.validate(value, v.checkType)
}

// ValidateAny implements AnyValidator.
func (v *DateValidator) ValidateAny(value any) Result[any] {
	return erase(v.Validate(value))
}

// Optional returns a copy that accepts nil input as trivially valid.
func (v *DateValidator) Optional() *DateValidator {
	return &DateValidator{base: v.base.asOptional(), min: v.min, max: v.max}
}

// WithMessage returns a copy whose type-check failure reports msg instead of
// the default message.
func (v *DateValidator) WithMessage(msg string) *DateValidator {
	return &DateValidator{base: v.base.withMessage(msg), min: v.min, max: v.max}
}

// Min requires the date to be at or after bound. Configuring a minimum later
// than an already-configured maximum is a programmer error in schema
// construction and panics with ErrInvalidDateRange immediately, before any
// Validate call can run.
func (v *DateValidator) Min(bound time.Time, msg ...string) *DateValidator {
	if v.max != nil && bound.After(*v.max) {
		panic(fmt.Errorf("%w: min %s, max %s",
			ErrInvalidDateRange, bound.Format(time.RFC3339), v.max.Format(time.RFC3339)))
	}
	m := override(fmt.Sprintf("Date must be at or after %s", bound.Format(time.RFC3339)), msg)
	return &DateValidator{
		base: v.base.withRule(func(t time.Time) *Error {
			if t.Before(bound) {
				return newError(m)
			}
			return nil
		}),
		min: &bound,
		max: v.max,
	}
}

// Max requires the date to be at or before bound. Configuring a maximum
// earlier than an already-configured minimum panics with
// ErrInvalidDateRange, the same way Min does.
func (v *DateValidator) Max(bound time.Time, msg ...string) *DateValidator {
	if v.min != nil && bound.Before(*v.min) {
		panic(fmt.Errorf("%w: min %s, max %s",
			ErrInvalidDateRange, v.min.Format(time.RFC3339), bound.Format(time.RFC3339)))
	}
	m := override(fmt.Sprintf("Date must be at or before %s", bound.Format(time.RFC3339)), msg)
	return &DateValidator{
		base: v.base.withRule(func(t time.Time) *Error {
			if t.After(bound) {
				return newError(m)
			}
			return nil
		}),
		min: v.min,
		max: &bound,
	}
}
