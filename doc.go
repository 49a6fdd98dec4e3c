// Package rkyv implements the core of a zero-copy archival framework.
//
// Values are serialized into a self-contained byte buffer such that the
// archived form can later be accessed directly from bytes, in place,
// without a decoding pass or allocation: a reader obtains a typed view
// by casting a pointer at a known offset.
//
// Three disciplines make this work together:
//
//   - Relative pointers ([RelPtr]) reference other archived values by a
//     signed offset relative to the pointer field itself, so the
//     archive is position-independent and can be copied or mapped
//     verbatim.
//   - Archival is a two-phase protocol: stage 1 ([Archiver.ArchiveInto])
//     writes a value's dependencies and returns a [Resolver]; stage 2
//     ([Resolver.Resolve]) synthesizes the value's fixed-size archived
//     header from those dependencies' final positions.
//   - Every archived header is written at a position aligned for its
//     type, so that a direct pointer cast at read time is sound.
//
// This package provides the contracts ([Sink], [Archiver], [RefArchiver],
// the self-archival marker), three concrete sinks ([BufferSink],
// [StreamSink], [FileSink]) and the [TrackingSink] decorator. It does
// not provide archival implementations for
// user-defined types, a derive macro, or container archival (slices,
// maps, strings) — those are external collaborators that consume this
// package's contracts. See SPEC_FULL.md for the full system this core
// sits inside.
package rkyv
