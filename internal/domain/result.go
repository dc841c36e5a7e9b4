package domain

// Empty is the payload of results for operations that return no value.
type Empty struct{}

// Result is either a success carrying a value of type T or a failure
// carrying an Error. Exactly one of the two is populated.
type Result[T any] struct {
	value T
	err   Error
	ok    bool
}

// Success returns a successful Result carrying v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure returns a failed Result carrying err. Passing None is a
// programming error.
func Failure[T any](err Error) Result[T] {
	if err.IsZero() {
		panic("domain: Failure called with None error")
	}
	return Result[T]{err: err}
}

// SuccessEmpty returns a successful Result with no payload.
func SuccessEmpty() Result[Empty] {
	return Success(Empty{})
}

// FailureEmpty returns a failed Result for an operation with no payload.
func FailureEmpty(err Error) Result[Empty] {
	return Failure[Empty](err)
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the Result carries an error.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value. It panics on a failed Result.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("domain: Value called on a failed Result (" + r.err.Code + ")")
	}
	return r.value
}

// Error returns the failure. It panics on a successful Result.
func (r Result[T]) Error() Error {
	if r.ok {
		panic("domain: Error called on a successful Result")
	}
	return r.err
}
