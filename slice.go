package display

import (
	"io"
	"strings"
)

// layout holds the presentation options shared by [Slice] and [SeqDisplay].
type layout struct {
	limit    int
	limitSet bool
	sep      string
	left     string
	right    string
	width    int
}

func newLayout() layout {
	return layout{
		sep:   defaultSeparator,
		left:  defaultLeftBrace,
		right: defaultRightBrace,
	}
}

// resolveLimit returns the explicit limit, or the package default as it
// stands right now.
func (l layout) resolveLimit() int {
	if l.limitSet {
		return l.limit
	}
	return CurrentDefaultLimit()
}

func (l layout) atMost(n int) layout {
	if n < 0 {
		l.limit, l.limitSet = 0, false
		return l
	}
	l.limit, l.limitSet = n, true
	return l
}

// render writes n elements, fetching the text of element i with at. Only
// the elements that end up in the output are fetched: the first limit-1 and
// the last one when n exceeds limit, all of them otherwise.
func (l layout) render(b *strings.Builder, limit, n int, at func(i int) string) {
	if limit == 0 {
		b.WriteString(l.left)
		b.WriteString(ellipsis)
		b.WriteString(l.right)
		return
	}

	b.WriteString(l.left)
	if n > limit {
		for i := range limit - 1 {
			b.WriteString(clip(at(i), l.width))
			b.WriteString(l.sep)
		}
		b.WriteString(ellipsis)
		b.WriteString(l.sep)
		b.WriteString(clip(at(n-1), l.width))
	} else {
		for i := range n {
			if i > 0 {
				b.WriteString(l.sep)
			}
			b.WriteString(clip(at(i), l.width))
		}
	}
	b.WriteString(l.right)
}

// Slice displays a borrowed slice, eliding the middle once it holds more
// elements than the limit: the first limit-1 elements and the last one are
// kept, with ".." in between.
//
//	display.NewSlice([]int{1, 2, 3, 4, 5, 6}).String() // "[1,2,3,4,..,6]"
//
// A Slice never copies or modifies the underlying slice. Option methods
// return an updated copy, so a Slice can be shared and reconfigured freely.
type Slice[T any] struct {
	items []T
	fn    func(T) string
	opts  layout
}

// NewSlice returns a display of items with default options: limit
// [DefaultLimit] (resolved at render time), separator ",", brackets "[" and
// "]", elements rendered with [Text].
func NewSlice[T any](items []T) Slice[T] {
	return Slice[T]{items: items, fn: Text[T], opts: newLayout()}
}

// NewSliceFunc is like [NewSlice] but renders each element with fn.
func NewSliceFunc[T any](items []T, fn func(T) string) Slice[T] {
	return NewSlice(items).Func(fn)
}

// SliceN is shorthand for NewSlice(items).AtMost(n).
func SliceN[T any](items []T, n int) Slice[T] {
	return NewSlice(items).AtMost(n)
}

// AtMost sets the maximum number of elements shown. Zero shows only "..".
// A negative n clears the limit so the package default applies.
func (s Slice[T]) AtMost(n int) Slice[T] {
	s.opts = s.opts.atMost(n)
	return s
}

// ResetLimit clears an explicit limit so the package default applies.
func (s Slice[T]) ResetLimit() Slice[T] {
	return s.AtMost(-1)
}

// Sep sets the text placed between elements and around the ".." marker.
func (s Slice[T]) Sep(sep string) Slice[T] {
	s.opts.sep = sep
	return s
}

// Brackets sets the text that opens and closes the output.
func (s Slice[T]) Brackets(left, right string) Slice[T] {
	s.opts.left, s.opts.right = left, right
	return s
}

// Func sets the per-element renderer. A nil fn restores [Text].
func (s Slice[T]) Func(fn func(T) string) Slice[T] {
	if fn == nil {
		fn = Text[T]
	}
	s.fn = fn
	return s
}

// Debug renders elements with [GoText].
func (s Slice[T]) Debug() Slice[T] {
	return s.Func(GoText[T])
}

// Width clips each rendered element to n terminal cells. Zero or negative
// disables clipping.
func (s Slice[T]) Width(n int) Slice[T] {
	s.opts.width = max(n, 0)
	return s
}

// Limit returns the limit that the next render will use.
func (s Slice[T]) Limit() int {
	return s.opts.resolveLimit()
}

// Len returns the number of elements in the underlying slice.
func (s Slice[T]) Len() int {
	return len(s.items)
}

// String renders the slice.
func (s Slice[T]) String() string {
	fn := s.fn
	if fn == nil {
		fn = Text[T]
	}
	var b strings.Builder
	s.opts.render(&b, s.Limit(), len(s.items), func(i int) string {
		return fn(s.items[i])
	})
	return b.String()
}

// WriteTo writes the rendered slice to w. The only possible error is the
// one returned by w.
func (s Slice[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
