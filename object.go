package schema

import "reflect"

// Fields maps field names to the validators applied to them. Declaration
// order is irrelevant; the map is fixed at construction.
type Fields map[string]AnyValidator

// ObjectValidator validates a structured record against a fixed field
// schema. Schema keys are authoritative: input keys absent from the schema
// are silently stripped from the output, and fields whose optional validator
// accepted an absent value are omitted entirely. Fields are validated
// exhaustively so that every failing field is reported in one pass.
type ObjectValidator struct {
	base[map[string]any]
	fields Fields
}

func (v *ObjectValidator) checkType(value any) (map[string]any, *Error) {
	if m, ok := value.(map[string]any); ok {
		return m, nil
	}
	rv := reflect.ValueOf(value)
	if value == nil || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, newError("Value must be an object")
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, nil
}

// Validate checks that value is a structured record, then validates every
// declared field. A successful Validate returns a freshly built record
// containing only declared, present fields.
func (v *ObjectValidator) Validate(value any) Result[map[string]any] {
	res := v.base.validate(value, v.checkType)
	if res.Absent {
		return absent[map[string]any]()
	}
	if !res.Success {
		return fail[map[string]any](res.Error)
	}

	out := make(map[string]any, len(v.fields))
	var errs map[string]*Error
	for name, fv := range v.fields {
		r := fv.ValidateAny(res.Data[name])
		if !r.Success {
			if errs == nil {
				errs = make(map[string]*Error)
			}
			errs[name] = r.Error
			continue
		}
		if r.Absent {
			continue
		}
		out[name] = r.Data
	}
	if len(errs) > 0 {
		return fail[map[string]any](&Error{Fields: errs})
	}
	return ok(out)
}

// ValidateAny implements AnyValidator.
func (v *ObjectValidator) ValidateAny(value any) Result[any] {
	return erase(v.Validate(value))
}

// Optional returns a copy that accepts nil input as trivially valid.
func (v *ObjectValidator) Optional() *ObjectValidator {
	return &ObjectValidator{base: v.base.asOptional(), fields: v.fields}
}

// WithMessage returns a copy whose type-check failure reports msg instead of
// the default message.
func (v *ObjectValidator) WithMessage(msg string) *ObjectValidator {
	return &ObjectValidator{base: v.base.withMessage(msg), fields: v.fields}
}
