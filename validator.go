package schema

// AnyValidator is the type-erased validation capability. Array and object
// validators hold their children through this interface only, never through
// concrete types, which is what allows schemas of arbitrary nesting depth
// with heterogeneous field types.
type AnyValidator interface {
	ValidateAny(value any) Result[any]
}

// Validator is the typed validation capability satisfied by every validator
// kind in this package. Validate is the sole evaluation entry point: it
// never mutates the validator, holds no per-call state, and is safe to
// invoke concurrently on a shared instance.
type Validator[T any] interface {
	AnyValidator
	Validate(value any) Result[T]
}

// rule is a single predicate attached to a validator. A nil return means the
// value passed. Rules run in attachment order after the type check; the
// first failing rule short-circuits the rest.
type rule[T any] func(value T) *Error

// base carries the configuration shared by every validator kind and
// implements the two-phase validate algorithm. base is only ever copied by
// value, and withRule reallocates the rule slice instead of appending in
// place, so a validator and any clone derived from it never share mutable
// state. A partially configured validator stored in a variable therefore
// cannot be altered by later chained calls on a derived copy.
type base[T any] struct {
	rules    []rule[T]
	optional bool
	message  string
}

// withRule returns a copy of b with r appended to a freshly allocated rule
// slice.
func (b base[T]) withRule(r rule[T]) base[T] {
	rules := make([]rule[T], len(b.rules), len(b.rules)+1)
	copy(rules, b.rules)
	b.rules = append(rules, r)
	return b
}

func (b base[T]) asOptional() base[T] {
	b.optional = true
	return b
}

func (b base[T]) withMessage(message string) base[T] {
	b.message = message
	return b
}

// validate runs the shared algorithm: the absent short-circuit for optional
// validators, then the kind-specific type check, then every attached rule in
// order. A custom top-level message replaces the type-check failure message
// only; rule failures keep their own messages.
func (b base[T]) validate(value any, checkType func(any) (T, *Error)) Result[T] {
	if b.optional && value == nil {
		return absent[T]()
	}
	data, err := checkType(value)
	if err != nil {
		if b.message != "" {
			err = newError(b.message)
		}
		return fail[T](err)
	}
	for _, r := range b.rules {
		if err := r(data); err != nil {
			return fail[T](err)
		}
	}
	return ok(data)
}

// override returns the caller-supplied message when one was given, the
// default otherwise.
func override(def string, msg []string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return def
}
