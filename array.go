package schema

import (
	"fmt"
	"reflect"
	"strconv"
)

// ArrayValidator validates a sequence and every element in it against a
// single item validator. Elements are validated exhaustively: every failing
// index is reported, keyed by its decimal position, instead of stopping at
// the first failure. A successful Validate returns a freshly built []T so
// that element coercions (for example string to time.Time) carry through.
type ArrayValidator[T any] struct {
	base[[]any]
	item Validator[T]
}

func (v *ArrayValidator[T]) checkType(value any) ([]any, *Error) {
	if s, ok := value.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(value)
	if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, newError("Value must be an array")
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// Validate checks that value is a sequence, applies the length rules, then
// validates every element in index order.
func (v *ArrayValidator[T]) Validate(value any) Result[[]T] {
	res := v.base.validate(value, v.checkType)
	if res.Absent {
		return absent[[]T]()
	}
	if !res.Success {
		return fail[[]T](res.Error)
	}

	items := make([]T, 0, len(res.Data))
	var errs map[string]*Error
	for i, elem := range res.Data {
		r := v.item.Validate(elem)
		if !r.Success {
			if errs == nil {
				errs = make(map[string]*Error)
			}
			errs[strconv.Itoa(i)] = r.Error
			continue
		}
		items = append(items, r.Data)
	}
	if len(errs) > 0 {
		return fail[[]T](&Error{Fields: errs})
	}
	return ok(items)
}

// ValidateAny implements AnyValidator.
func (v *ArrayValidator[T]) ValidateAny(value any) Result[any] {
	return erase(v.Validate(value))
}

// Optional returns a copy that accepts nil input as trivially valid.
func (v *ArrayValidator[T]) Optional() *ArrayValidator[T] {
	return &ArrayValidator[T]{base: v.base.asOptional(), item: v.item}
}

// WithMessage returns a copy whose type-check failure reports msg instead of
// the default message.
func (v *ArrayValidator[T]) WithMessage(msg string) *ArrayValidator[T] {
	return &ArrayValidator[T]{base: v.base.withMessage(msg), item: v.item}
}

// MinLength requires the sequence to contain at least n elements. Length
// rules run before the element pass.
func (v *ArrayValidator[T]) MinLength(n int, msg ...string) *ArrayValidator[T] {
	m := override(fmt.Sprintf("Array must contain at least %d items", n), msg)
	return &ArrayValidator[T]{
		base: v.base.withRule(func(s []any) *Error {
			if len(s) < n {
				return newError(m)
			}
			return nil
		}),
		item: v.item,
	}
}

// MaxLength requires the sequence to contain at most n elements.
func (v *ArrayValidator[T]) MaxLength(n int, msg ...string) *ArrayValidator[T] {
	m := override(fmt.Sprintf("Array must contain at most %d items", n), msg)
	return &ArrayValidator[T]{
		base: v.base.withRule(func(s []any) *Error {
			if len(s) > n {
				return newError(m)
			}
			return nil
		}),
		item: v.item,
	}
}
