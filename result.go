package display

// Result displays the outcome of an operation as "Ok(<value>)" or
// "Err(<error>)".
type Result[T any] struct {
	value T
	err   error
	fn    func(T) string
}

// Ok returns a display of a successful outcome.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, fn: Text[T]}
}

// Err returns a display of a failed outcome. A nil err renders as
// "Err(<nil>)".
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNil{}
	}
	return Result[T]{err: err, fn: Text[T]}
}

// FromResult returns a display of a (value, error) pair. The error wins when
// it is non-nil.
func FromResult[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Func sets the renderer for the Ok value. A nil fn restores [Text].
func (r Result[T]) Func(fn func(T) string) Result[T] {
	if fn == nil {
		fn = Text[T]
	}
	r.fn = fn
	return r
}

// IsOk reports whether the outcome is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// String renders the result.
func (r Result[T]) String() string {
	if r.err != nil {
		return "Err(" + Text(r.err) + ")"
	}
	if r.fn == nil {
		return "Ok(" + Text(r.value) + ")"
	}
	return "Ok(" + r.fn(r.value) + ")"
}

type errNil struct{}

func (errNil) Error() string { return "<nil>" }
