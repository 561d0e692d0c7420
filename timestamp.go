package display

import "time"

// Timestamp layouts, always rendered in UTC.
const (
	LayoutMicros     = "2006-01-02T15:04:05.000000"
	LayoutMicrosZone = "2006-01-02T15:04:05.000000Z-0700"
	LayoutMillis     = "2006-01-02T15:04:05.000"
	LayoutMillisZone = "2006-01-02T15:04:05.000Z-0700"
)

// UnixTimestamp displays a duration since the UNIX epoch as a UTC calendar
// time, e.g. "2024-08-08T07:40:19.023000Z+0000". A missing duration renders
// as "None". Fractional seconds are truncated, not rounded.
type UnixTimestamp struct {
	d      time.Duration
	ok     bool
	millis bool
	noZone bool
}

// Timestamp returns a display of d, measured from the UNIX epoch, with
// microsecond precision and a zone suffix.
func Timestamp(d time.Duration) UnixTimestamp {
	return UnixTimestamp{d: d, ok: true}
}

// OptionalTimestamp is like [Timestamp] but renders "None" for a nil d.
func OptionalTimestamp(d *time.Duration) UnixTimestamp {
	if d == nil {
		return UnixTimestamp{}
	}
	return Timestamp(*d)
}

// InMillis selects millisecond precision instead of microseconds.
func (u UnixTimestamp) InMillis(on bool) UnixTimestamp {
	u.millis = on
	return u
}

// WithTimezone controls the "Z+0000" suffix.
func (u UnixTimestamp) WithTimezone(on bool) UnixTimestamp {
	u.noZone = !on
	return u
}

// Short selects milliseconds without a zone: "2024-08-08T07:40:19.023".
func (u UnixTimestamp) Short() UnixTimestamp {
	return u.InMillis(true).WithTimezone(false)
}

// Time returns the instant the duration designates, and false when absent.
func (u UnixTimestamp) Time() (time.Time, bool) {
	if !u.ok {
		return time.Time{}, false
	}
	return time.Unix(0, 0).Add(u.d).UTC(), true
}

func (u UnixTimestamp) layout() string {
	switch {
	case u.millis && u.noZone:
		return LayoutMillis
	case u.millis:
		return LayoutMillisZone
	case u.noZone:
		return LayoutMicros
	default:
		return LayoutMicrosZone
	}
}

// String renders the timestamp.
func (u UnixTimestamp) String() string {
	t, ok := u.Time()
	if !ok {
		return noneText
	}
	return t.Format(u.layout())
}
