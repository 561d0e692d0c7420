package display

// Option displays a value that may be absent. An absent value renders as
// "None"; a present one renders as the value itself, with no wrapper.
type Option[T any] struct {
	value T
	ok    bool
	fn    func(T) string
}

// Some returns a display of the present value v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true, fn: Text[T]}
}

// None returns a display of an absent T.
func None[T any]() Option[T] {
	return Option[T]{fn: Text[T]}
}

// FromPtr returns None for a nil p and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Func sets the renderer for a present value. A nil fn restores [Text].
func (o Option[T]) Func(fn func(T) string) Option[T] {
	if fn == nil {
		fn = Text[T]
	}
	o.fn = fn
	return o
}

// Debug renders a present value with [GoText], so strings are quoted.
func (o Option[T]) Debug() Option[T] {
	return o.Func(GoText[T])
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// String renders the option.
func (o Option[T]) String() string {
	if !o.ok {
		return noneText
	}
	if o.fn == nil {
		return Text(o.value)
	}
	return o.fn(o.value)
}
