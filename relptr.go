package rkyv

import (
	"fmt"
	"unsafe"

	"github.com/Miaxos/rkyv/internal/utils"
)

// RelPtr is a position-independent reference to an archived T. It
// occupies exactly 4 bytes: a signed, self-relative offset. Dereferencing
// takes the address of the RelPtr value itself, adds offset bytes, and
// reinterprets the result as *T.
//
// A RelPtr is only meaningful while resident at the archive position it
// was written to; copying a RelPtr out of its archive independently of
// its referent invalidates it, since the offset is relative to the
// RelPtr's own address, not to any fixed base.
type RelPtr[T any] struct {
	offset int32
}

// NewRelPtr builds a RelPtr stored at byte position from, referring to
// the archived T at byte position to. It fails if to-from does not fit
// in an int32, which bounds a single archive to roughly ±2 GiB of
// reachable offset from any one pointer.
func NewRelPtr[T any](from, to int) (RelPtr[T], error) {
	offset, err := utils.CheckOffsetRange(from, to)
	if err != nil {
		return RelPtr[T]{}, fmt.Errorf("%w: %v", ErrOffsetOverflow, err)
	}
	return RelPtr[T]{offset: offset}, nil
}

// Offset returns the raw self-relative offset stored in the pointer.
func (p *RelPtr[T]) Offset() int32 {
	return p.offset
}

// Pointer computes the address the RelPtr refers to: its own address
// plus its offset. The caller is responsible for that address being
// inside the same archive buffer that this RelPtr lives in.
func (p *RelPtr[T]) Pointer() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(p), p.offset)
}

// Deref reinterprets the referent as *T. It performs no bounds or
// alignment checking: the archive is trusted, not validated.
func (p *RelPtr[T]) Deref() *T {
	return (*T)(p.Pointer())
}

// RelPtrEqual compares two relative pointers by the value of their
// referents, rather than their own addresses or offsets: a RelPtr has no
// identity independent of what it points to. Go has no
// operator-overloading equivalent to Rust's PartialEq impl, so this is a
// free function rather than a method.
func RelPtrEqual[T comparable](a, b *RelPtr[T]) bool {
	return *a.Deref() == *b.Deref()
}
