// Package schema provides a composable, fluent validation engine for
// dynamic, JSON-shaped values: strings, numbers, booleans, dates, arrays,
// and objects of arbitrary nesting depth.
//
// Validators are built once at schema-definition time through the package
// constructors and configured through chained methods. Every configuration
// call returns a new validator instance carrying the accumulated rules; the
// receiver is never mutated. Validation itself is a pure, synchronous
// computation with no I/O and no per-call state, so a single validator tree
// is safe to share across goroutines without locking.
//
// # Architecture
//
// Every validator runs the same two-phase algorithm: a kind-specific type
// check first, then the attached rules in the order they were configured.
// The first failing rule terminates evaluation for that validator. Array and
// object validators add a third, exhaustive phase that validates every
// element or declared field and aggregates all child failures into one
// structured error, keyed by index or field name.
//
// Core building blocks:
//   - Validator[T]  – typed validation capability, one Validate entry point
//   - AnyValidator  – type-erased form used for heterogeneous object fields
//   - Result[T]     – success-with-data or failure-with-error outcome
//   - Error         – recursive error value: message leaf or keyed mapping
//
// # Usage
//
//	user := schema.Object(schema.Fields{
//		"name":  schema.String().MinLength(1).MaxLength(100),
//		"email": schema.String().Email(),
//		"age":   schema.Number().Min(0).Max(120).Optional(),
//		"tags":  schema.Array[string](schema.String().MinLength(1)),
//	})
//
//	res := user.Validate(input)
//	if !res.Success {
//		res.Error.Walk(func(path, message string) {
//			log.Printf("%s: %s", path, message)
//		})
//		return
//	}
//	// res.Data is a freshly built map holding only declared, present fields.
//
// # Error Handling
//
// Validation failures are never raised as panics or returned as plain Go
// errors from Validate; they are reported through the Result contract. An
// Error is either a leaf message or a mapping of nested errors, so callers
// that do not know the schema shape can walk failures generically with Leaf,
// Field, and Walk. The one construction-time exception is an inverted date
// range (Min later than Max), which panics with ErrInvalidDateRange at
// configuration time to surface the programmer error before the schema is
// ever used.
//
// # Performance Considerations
//
// Validators hold no mutable shared state after construction and evaluation
// visits every element and declared field exactly once. Recursion depth
// equals the nesting depth of the composed schema. There is no caching or
// memoization; the only short-circuits are first-rule-failure within one
// validator and the absent check on optional validators.
package schema
