// Package display renders common value shapes as short, deterministic text
// for logs and diagnostics.
//
// Every display is a small value with a String method, so it can be passed
// straight to fmt, a logger, or an error message. Options are set with
// chained methods that return an updated copy; the order of the calls does
// not matter. Rendering never fails.
//
// # Slices
//
// [Slice] shows at most a limited number of elements. When a slice is longer
// than the limit, the first limit-1 elements and the last one are kept and
// the middle is replaced with "..":
//
//	display.NewSlice([]int{1, 2, 3, 4}).String()          // "[1,2,3,4]"
//	display.NewSlice([]int{1, 2, 3, 4, 5, 6}).String()    // "[1,2,3,4,..,6]"
//	display.SliceN([]int{1, 2, 3, 4, 5, 6, 7}, 2).String() // "[1,..,7]"
//	display.SliceN([]int{1, 2, 3, 4, 5, 6, 7}, 1).String() // "[..,7]"
//	display.SliceN([]int{1, 2, 3, 4, 5, 6, 7}, 0).String() // "[..]"
//
// Options:
//
//   - [Slice.AtMost] — element limit (default [DefaultLimit], see [SetDefaultLimit])
//   - [Slice.Sep] — separator (default ",")
//   - [Slice.Brackets] — opening and closing text (default "[" and "]")
//   - [Slice.Func], [Slice.Debug] — per-element rendering (default [Text])
//   - [Slice.Width] — clip each element to a number of terminal cells
//
// A limit of zero always renders the brackets around ".." with no separator.
// An unset limit is resolved when the slice is rendered, so changing the
// package default affects every display created without one.
//
// [Seq] and [Chan] apply the same rules to an iterator or a channel while
// holding only the elements that can appear in the output.
//
// # Options and Results
//
//	display.Some(1).String()                      // "1"
//	display.None[int]().String()                  // "None"
//	display.Some("hello").Debug().String()        // "\"hello\""
//	display.Ok(1).String()                        // "Ok(1)"
//	display.Err[int](io.EOF).String()             // "Err(EOF)"
//
// # Timestamps
//
// [UnixTimestamp] renders a duration since the UNIX epoch in UTC:
//
//	display.Timestamp(1723102819023 * time.Millisecond).String()
//	// "2024-08-08T07:40:19.023000Z+0000"
//	display.Timestamp(1723102819023 * time.Millisecond).Short().String()
//	// "2024-08-08T07:40:19.023"
//
// # Configuration
//
// [Options] holds sequence settings decoded from YAML, TOML or JSON with
// [DecodeOptions] or [LoadOptions], and is applied with [Slice.With].
//
// # Logging
//
// [ZapSlice], [ZapSeq], [ZapOption], [ZapResult] and [ZapTimestamp] wrap
// displays as lazy zap fields.
//
// # Errors
//
// Only configuration loading returns errors:
//
//   - [ErrUnsupportedConfig] — unknown config format or file extension
//   - [ErrInvalidOptions] — malformed or out-of-range options
package display
