package rkyv

import "errors"

// ErrOffsetOverflow is wrapped into the error returned by NewRelPtr when
// the distance between two archive positions does not fit in a signed
// 32-bit offset, or either position is outside what a relative pointer
// can address. This must be detected rather than silently truncated.
var ErrOffsetOverflow = errors.New("rkyv: relative offset exceeds int32 range")

// ErrNegativeAlignment is the panic value used when Align or AlignFor is
// asked for a non-power-of-two alignment. This is a precondition
// violation, not a runtime-checked error: callers only ever pass
// alignof(T) for some concrete T, which is always a power of two.
var ErrNegativeAlignment = errors.New("rkyv: alignment must be a positive power of two")
