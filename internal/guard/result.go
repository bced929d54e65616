package guard

// Result is the outcome of a guarded remote call: either a value or a
// contained *Error. The zero Result is a successful zero value.
type Result[T any] struct {
	value T
	err   *Error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps a contained failure.
func Fail[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.err == nil }

// Value returns the value, or the zero value of T on failure.
func (r Result[T]) Value() T { return r.value }

// Or returns the value, or def on failure.
func (r Result[T]) Or(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Err returns the failure as an error, or nil.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Kind returns the failure kind, KindNone on success.
func (r Result[T]) Kind() Kind {
	if r.err == nil {
		return KindNone
	}
	return r.err.Kind
}

// Get returns the value and the failure, for callers that branch.
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}
