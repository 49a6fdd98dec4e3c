package rkyv

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/Miaxos/rkyv/internal/utils"
)

// CreateMode controls how NewFileSink opens its target file.
type CreateMode int

const (
	// ModeTruncate creates a new file, truncating it if it already
	// exists. Equivalent to os.Create's behavior.
	ModeTruncate CreateMode = iota

	// ModeExclusive creates a new file and fails if it already exists.
	ModeExclusive
)

// FileSink is a Sink backed directly by an *os.File, for archives too
// large to build up in an in-memory buffer first: a random-access
// analogue of StreamSink, specialized to files. Every Write goes through
// WriteAt at the sink's own tracked position, so the file's OS-level
// seek offset is never touched.
type FileSink struct {
	file *os.File
	pos  int
}

// NewFileSink opens path according to mode and returns a FileSink
// starting at position 0.
func NewFileSink(path string, mode CreateMode) (*FileSink, error) {
	var f *os.File
	var err error

	switch mode {
	case ModeTruncate:
		f, err = os.Create(path)
	case ModeExclusive:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	default:
		return nil, fmt.Errorf("rkyv: invalid create mode: %d", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("rkyv: create file sink: %w", err)
	}

	return &FileSink{file: f}, nil
}

// Pos returns the current tracked write position.
func (s *FileSink) Pos() int {
	return s.pos
}

// Write appends p at the sink's tracked position via WriteAt.
func (s *FileSink) Write(p []byte) error {
	n, err := s.file.WriteAt(p, int64(s.pos))
	s.pos += n
	if err != nil {
		return fmt.Errorf("rkyv: file sink write at %d: %w", s.pos-n, err)
	}
	if n != len(p) {
		return fmt.Errorf("rkyv: file sink short write at %d: wrote %d of %d bytes", s.pos-n, n, len(p))
	}
	return nil
}

// ReadUint64At reads back an 8-byte value already written to the sink's
// file, without needing to reopen or mmap it. Primarily useful in tests
// that want to assert a self-archival u64's bytes landed correctly.
func (s *FileSink) ReadUint64At(offset int64, order binary.ByteOrder) (uint64, error) {
	return utils.ReadUint64(s.file, offset, order)
}

// Flush commits all writes to stable storage.
func (s *FileSink) Flush() error {
	return s.file.Sync()
}

// Close closes the underlying file. It does not flush first.
func (s *FileSink) Close() error {
	return s.file.Close()
}

var _ Sink = (*FileSink)(nil)
