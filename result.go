package schema

// Result is the outcome of a Validate call. Exactly one of two shapes is
// produced: a success carrying the validated (and possibly coerced) Data, or
// a failure carrying a non-nil Error. Absent marks the third, special
// success: an optional validator accepted a nil input, in which case Data
// holds the zero value and aggregating parents omit the entry entirely.
type Result[T any] struct {
	Success bool
	Absent  bool
	Data    T
	Error   *Error
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func absent[T any]() Result[T] {
	return Result[T]{Success: true, Absent: true}
}

func fail[T any](err *Error) Result[T] {
	return Result[T]{Error: err}
}

// erase converts a typed result into the type-erased form returned by
// ValidateAny. Data is only carried over for present successes so that an
// absent result never smuggles a typed zero value into an object's output.
func erase[T any](r Result[T]) Result[any] {
	out := Result[any]{Success: r.Success, Absent: r.Absent, Error: r.Error}
	if r.Success && !r.Absent {
		out.Data = r.Data
	}
	return out
}
