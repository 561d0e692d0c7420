package display

import (
	"io"
	"iter"
	"strings"
)

// SeqDisplay displays the elements of an iterator with the same options and
// output as [Slice]. It holds at most limit rendered elements plus the most
// recent one while consuming the iterator, so long or unbounded sources can
// be summarized without collecting them first.
//
// Each render consumes the iterator once. With a limit of zero the iterator
// is not consumed at all.
type SeqDisplay[T any] struct {
	seq  iter.Seq[T]
	fn   func(T) string
	opts layout
}

// Seq returns a display of the elements produced by seq.
func Seq[T any](seq iter.Seq[T]) SeqDisplay[T] {
	return SeqDisplay[T]{seq: seq, fn: Text[T], opts: newLayout()}
}

// Chan returns a display of the values received from ch. Rendering drains
// ch until it is closed, so it renders once.
func Chan[T any](ch <-chan T) SeqDisplay[T] {
	return Seq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// AtMost sets the maximum number of elements shown. See [Slice.AtMost].
func (s SeqDisplay[T]) AtMost(n int) SeqDisplay[T] {
	s.opts = s.opts.atMost(n)
	return s
}

// ResetLimit clears an explicit limit so the package default applies.
func (s SeqDisplay[T]) ResetLimit() SeqDisplay[T] {
	return s.AtMost(-1)
}

// Sep sets the element separator.
func (s SeqDisplay[T]) Sep(sep string) SeqDisplay[T] {
	s.opts.sep = sep
	return s
}

// Brackets sets the opening and closing text.
func (s SeqDisplay[T]) Brackets(left, right string) SeqDisplay[T] {
	s.opts.left, s.opts.right = left, right
	return s
}

// Func sets the per-element renderer. A nil fn restores [Text].
func (s SeqDisplay[T]) Func(fn func(T) string) SeqDisplay[T] {
	if fn == nil {
		fn = Text[T]
	}
	s.fn = fn
	return s
}

// Debug renders elements with [GoText].
func (s SeqDisplay[T]) Debug() SeqDisplay[T] {
	return s.Func(GoText[T])
}

// Width clips each rendered element to n terminal cells.
func (s SeqDisplay[T]) Width(n int) SeqDisplay[T] {
	s.opts.width = max(n, 0)
	return s
}

// Limit returns the limit that the next render will use.
func (s SeqDisplay[T]) Limit() int {
	return s.opts.resolveLimit()
}

// String consumes the iterator and renders it.
func (s SeqDisplay[T]) String() string {
	limit := s.Limit()
	var b strings.Builder
	if limit == 0 || s.seq == nil {
		s.opts.render(&b, limit, 0, nil)
		return b.String()
	}

	fn := s.fn
	if fn == nil {
		fn = Text[T]
	}

	// head keeps the first limit elements, enough for the unelided case.
	// Past it only the latest element is retained, and rendered at the end.
	head := make([]string, 0, min(limit, 64))
	var tail T
	n := 0
	for item := range s.seq {
		if n < limit {
			head = append(head, fn(item))
		} else {
			tail = item
		}
		n++
	}

	s.opts.render(&b, limit, n, func(i int) string {
		if i < len(head) {
			return head[i]
		}
		return fn(tail)
	})
	return b.String()
}

// WriteTo consumes the iterator and writes the rendered output to w.
func (s SeqDisplay[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
