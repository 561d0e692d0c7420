package display

import "go.uber.org/zap"

// Field constructors for zap loggers. The fields are lazy: a display is
// rendered only when the entry is actually written.
//
//	logger.Debug("batch flushed",
//		display.ZapSlice("ids", display.NewSlice(ids)),
//		display.ZapTimestamp("at", display.Timestamp(elapsed)),
//	)

// ZapSlice returns a zap field holding s.
func ZapSlice[T any](key string, s Slice[T]) zap.Field {
	return zap.Stringer(key, s)
}

// ZapSeq returns a zap field holding s. The iterator is consumed when the
// entry is encoded.
func ZapSeq[T any](key string, s SeqDisplay[T]) zap.Field {
	return zap.Stringer(key, s)
}

// ZapOption returns a zap field holding o.
func ZapOption[T any](key string, o Option[T]) zap.Field {
	return zap.Stringer(key, o)
}

// ZapResult returns a zap field holding r.
func ZapResult[T any](key string, r Result[T]) zap.Field {
	return zap.Stringer(key, r)
}

// ZapTimestamp returns a zap field holding u.
func ZapTimestamp(key string, u UnixTimestamp) zap.Field {
	return zap.Stringer(key, u)
}
