package rkyv

import (
	"unsafe"

	"github.com/Miaxos/rkyv/internal/utils"
)

// Sink is the append-only byte sink contract every archive operation
// writes through. Implementations track their own position; a
// successful Write must advance Pos() by exactly len(p).
type Sink interface {
	// Pos returns the number of bytes emitted so far.
	Pos() int

	// Write appends p. On success, a subsequent Pos() reflects an
	// increase of exactly len(p). On failure, Pos() is left at an
	// implementation-defined value no smaller than before the call.
	Write(p []byte) error
}

// zeroChunk is the scratch buffer Align pads with. It is never written
// to, so it stays zero for the lifetime of the program; this mirrors the
// fixed 16-byte zero array the original implementation pads with.
var zeroChunk [16]byte

// Align emits zero or more zero bytes so the sink's position becomes a
// multiple of align, which must be a power of two. It is idempotent when
// the sink is already aligned. Returns the post-alignment position.
func Align(s Sink, align int) (int, error) {
	if align <= 0 || align&(align-1) != 0 {
		panic(ErrNegativeAlignment)
	}

	offset := s.Pos() & (align - 1)
	if offset == 0 {
		return s.Pos(), nil
	}

	padding := align - offset
	for padding > 0 {
		n := len(zeroChunk)
		if n > padding {
			n = padding
		}
		if err := s.Write(zeroChunk[:n]); err != nil {
			return s.Pos(), err
		}
		padding -= n
	}
	return s.Pos(), nil
}

// AlignFor aligns s for the native alignment of T.
func AlignFor[T any](s Sink) (int, error) {
	var zero T
	return Align(s, int(unsafe.Alignof(zero)))
}

// Archiver is implemented by sized values that can archive themselves.
// Stage 1 (ArchiveInto) must recursively archive every owned dependency
// by calling Archive/ArchiveRef on the sink, collect their returned
// positions, and must not write the value's own header: that is stage
// 2's job, performed by the returned Resolver.
type Archiver[T any, A any] interface {
	ArchiveInto(sink Sink) (Resolver[T, A], error)
}

// RefArchiver is implemented by unsized or indirectly-archived values
// (strings, slices, dynamically sized tails) whose archived form is
// addressed by a RelPtr rather than embedded inline.
type RefArchiver[T any, A any] interface {
	ArchiveRefInto(sink Sink) (Resolver[T, RelPtr[A]], error)
}

// ArchiveSelf is the constructor for the self-archival fast path: a
// type whose archived header is bit-identical to its in-memory
// representation skips dependency archival entirely and uses
// SelfResolver. This is soundness-critical, not an optimization — it
// must be asserted explicitly by whoever writes T's ArchiveInto method,
// never inferred by this package. Only trivially copyable types with a
// fixed, portable layout (primitive scalars and arrays of them are the
// canonical case) may use it; marking a type with pointers, padding, or
// layout variance produces archives that are undefined to read.
func ArchiveSelf[T any](Sink) (Resolver[T, T], error) {
	return SelfResolver[T]{}, nil
}

// Archive is the top-level archival operation for a sized value: it
// runs stage 1, aligns the sink for the archived header, runs stage 2,
// and appends the resulting bytes. It returns the header's position,
// which is what a reader needs to locate the archived value later.
func Archive[T Archiver[T, A], A any](s Sink, value T) (int, error) {
	resolver, err := value.ArchiveInto(s)
	if err != nil {
		return 0, utils.WrapError("archiving dependencies", err)
	}
	pos, err := AlignFor[A](s)
	if err != nil {
		return 0, utils.WrapError("aligning sink for header", err)
	}
	archived, err := resolver.Resolve(pos, &value)
	if err != nil {
		return 0, utils.WrapError("resolving header", err)
	}
	if err := writeHeader(s, &archived); err != nil {
		return 0, utils.WrapError("writing header", err)
	}
	return pos, nil
}

// ArchiveRef is the same two-phase protocol as Archive, for values whose
// archived form is addressed by reference.
func ArchiveRef[T RefArchiver[T, A], A any](s Sink, value T) (int, error) {
	resolver, err := value.ArchiveRefInto(s)
	if err != nil {
		return 0, utils.WrapError("archiving dependencies by reference", err)
	}
	pos, err := AlignFor[RelPtr[A]](s)
	if err != nil {
		return 0, utils.WrapError("aligning sink for reference header", err)
	}
	archived, err := resolver.Resolve(pos, &value)
	if err != nil {
		return 0, utils.WrapError("resolving reference header", err)
	}
	if err := writeHeader(s, &archived); err != nil {
		return 0, utils.WrapError("writing reference header", err)
	}
	return pos, nil
}

// ArchiveByRef is the canonical RefArchiver implementation for any sized
// Archiver[T, A]: "archive by reference" is just "archive, then take the
// address". A type that already implements Archiver gets ArchiveRefInto
// for free by delegating to this function.
func ArchiveByRef[T Archiver[T, A], A any](s Sink, value T) (Resolver[T, RelPtr[A]], error) {
	pos, err := Archive[T, A](s, value)
	if err != nil {
		return nil, err
	}
	return OffsetResolver[T, A](pos), nil
}

// maxArchivedHeaderSize bounds how large a single archived header may
// be. No Resolver produced by this package's own types comes anywhere
// close to this; the check exists to catch a miscomputed Resolver
// returning a nonsensical size before it reaches the sink.
const maxArchivedHeaderSize = 1 << 20

// writeHeader appends the raw bytes of the fixed-size archived header
// *archived, which stage 2 guarantees is trivially copyable by
// construction (it was produced by a Resolver, never by the caller
// directly).
func writeHeader[A any](s Sink, archived *A) error {
	size := int(unsafe.Sizeof(*archived))
	if size == 0 {
		return nil
	}
	if err := utils.ValidateBufferSize(uint64(size), maxArchivedHeaderSize, "archived header"); err != nil {
		return err
	}
	return s.Write(unsafe.Slice((*byte)(unsafe.Pointer(archived)), size))
}
