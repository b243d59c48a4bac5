package domain

// Result is the two-case outcome of a fallible operation: success with a
// payload, or failure with a classified error. The fields are unexported so
// the two cases are mutually exclusive by construction; callers go through
// Success/Failure to build one and IsSuccess/IsFailure to narrow it, never
// through the discriminant directly.
type Result[T any] struct {
	ok       bool
	data     T
	metadata map[string]any
	err      ClassifiedError
	context  map[string]any
}

// Success builds a successful Result carrying data and optional metadata.
func Success[T any](data T, metadata ...map[string]any) Result[T] {
	r := Result[T]{ok: true, data: data}
	if len(metadata) > 0 {
		r.metadata = metadata[0]
	}
	return r
}

// Failure builds a failed Result carrying a classified error and optional
// context. A nil err is a programmer error and is normalized to an
// INTERNAL_ERROR so the failure case never carries a nil error.
func Failure[T any](err ClassifiedError, context ...map[string]any) Result[T] {
	if err == nil {
		err = Internal("failure constructed with nil error")
	}
	r := Result[T]{err: err}
	if len(context) > 0 {
		r.context = context[0]
	}
	return r
}

// IsSuccess reports whether the Result holds a payload.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the Result holds a classified error.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Data returns the payload. On a failed Result it returns the zero value;
// callers must narrow with IsSuccess first.
func (r Result[T]) Data() T { return r.data }

// Err returns the classified error, or nil on success.
func (r Result[T]) Err() ClassifiedError {
	if r.ok {
		return nil
	}
	return r.err
}

// Metadata returns optional success metadata. Nil when none was supplied.
func (r Result[T]) Metadata() map[string]any { return r.metadata }

// Context returns optional failure context. Nil when none was supplied.
func (r Result[T]) Context() map[string]any { return r.context }

// Unwrap converts the Result to Go's conventional (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.data, nil
	}
	return r.data, r.err
}
