package display

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for programmatic error handling.
// Rendering never fails; these are returned by configuration loading only.
var (
	ErrUnsupportedConfig = errors.New("unsupported config format")
	ErrInvalidOptions    = errors.New("invalid options")
)

// DefaultLimit is the element limit used by a [Slice] that has none set,
// until changed with [SetDefaultLimit].
const DefaultLimit = 5

const (
	ellipsis          = ".."
	defaultSeparator  = ","
	defaultLeftBrace  = "["
	defaultRightBrace = "]"
	noneText          = "None"
	clippedTail       = "..."
	minTailWidth      = 4
)

var defaultLimit atomic.Int64

func init() {
	defaultLimit.Store(DefaultLimit)
}

// SetDefaultLimit changes the limit used by every [Slice] and [SeqDisplay]
// without an explicit limit. It takes effect at their next render, including
// for values constructed earlier. Negative values are ignored.
func SetDefaultLimit(n int) {
	if n < 0 {
		return
	}
	defaultLimit.Store(int64(n))
}

// CurrentDefaultLimit returns the limit applied to displays without one.
func CurrentDefaultLimit() int {
	return int(defaultLimit.Load())
}

// Text renders v the way plain output does: String when v implements
// [fmt.Stringer], Error for errors, otherwise the %v verb. A String method
// that panics on a nil receiver renders as "<nil>".
func Text[T any](v T) string {
	return fmt.Sprintf("%v", v)
}

// GoText renders v with its Go-syntax representation (GoString or %#v).
// Strings come out quoted.
func GoText[T any](v T) string {
	return fmt.Sprintf("%#v", v)
}
