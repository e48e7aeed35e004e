package schema

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidDateRange reports an inverted date range configuration, i.e. a
// minimum bound later than the maximum bound on the same validator. This is
// a programmer error in schema construction: it is carried in a panic raised
// at configuration time, before any Validate call can run.
var ErrInvalidDateRange = errors.New("schema: minimum date is after maximum date")

// Error is the recursive validation error value produced by a failed
// Validate call. It is a tagged union with exactly two shapes:
//
//   - a leaf carrying a human-readable Message (type-check and rule
//     failures on a single validator), or
//   - an aggregate carrying Fields, a mapping from field name or decimal
//     array index to the nested Error of that child.
//
// Callers that do not know the schema shape in advance can walk an Error
// generically: Leaf reports which shape a node has, and Fields holds the
// children of an aggregate node. The JSON encoding preserves the same
// structure, so error trees can be returned to API clients as-is.
type Error struct {
	Message string            `json:"message,omitempty"`
	Fields  map[string]*Error `json:"fields,omitempty"`
}

func newError(message string) *Error {
	return &Error{Message: message}
}

// Leaf reports whether the error is a plain message rather than a mapping of
// nested child errors.
func (e *Error) Leaf() bool {
	return e.Fields == nil
}

// Field returns the nested error for the given field name or array index,
// or nil when the error is nil, a leaf, or the key has no error recorded.
// A nil receiver is allowed so lookups can be chained across levels.
func (e *Error) Field(key string) *Error {
	if e == nil || e.Fields == nil {
		return nil
	}
	return e.Fields[key]
}

// Walk visits every leaf message in the error tree in lexical key order,
// calling fn with the dot-joined path from the root ("" for a root leaf)
// and the leaf message.
func (e *Error) Walk(fn func(path, message string)) {
	e.walk("", fn)
}

func (e *Error) walk(prefix string, fn func(path, message string)) {
	if e.Leaf() {
		fn(prefix, e.Message)
		return
	}
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		e.Fields[key].walk(path, fn)
	}
}

// Error implements the error interface with a flat, human-readable summary.
// The structured form stays available through Fields; this rendering exists
// only for logs and error wrapping.
func (e *Error) Error() string {
	if e.Leaf() {
		return e.Message
	}
	var parts []string
	e.Walk(func(path, message string) {
		parts = append(parts, path+": "+message)
	})
	return "validation failed: " + strings.Join(parts, "; ")
}
