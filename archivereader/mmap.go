// Package archivereader maps a completed archive file back into memory
// so a caller can recover a typed view of its root value. It is a
// reader-side convenience built on top of the core package, not a new
// Sink: it never writes and performs no validation of untrusted input
// beyond what RelPtr.Deref already assumes of any archive.
package archivereader

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"
)

// Mapping is a read-only view of an archive file's bytes, mapped
// directly into the process's address space.
type Mapping struct {
	file *os.File
	data mmap.MMap
}

// Open memory-maps path read-only. The caller must call Close when done
// to release both the mapping and the underlying file descriptor.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archivereader: open %s: %w", path, err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("archivereader: mmap %s: %w", path, err)
	}

	return &Mapping{file: f, data: data}, nil
}

// Len returns the size of the mapped region in bytes.
func (m *Mapping) Len() int {
	return len(m.data)
}

// At returns a pointer to the byte at offset within the mapping. The
// caller is responsible for offset being within range and for any
// alignment the pointed-to type requires; this mirrors the trust model
// RelPtr.Deref uses within a single in-memory buffer, extended across
// the mmap boundary.
func (m *Mapping) At(offset int) unsafe.Pointer {
	return unsafe.Pointer(&m.data[offset])
}

// CheckPageAlignment reports whether offset is aligned to the host's
// page size. Archive formats that want mapped regions to start on a
// page boundary (for example to later call mmap.MapRegion at a fixed
// offset) can use this as an advisory check; Root itself does not call
// it, since not every root needs page alignment.
func CheckPageAlignment(offset int) bool {
	pageSize := unix.Getpagesize()
	return offset%pageSize == 0
}

// Close unmaps the region and closes the underlying file.
func (m *Mapping) Close() error {
	if err := m.data.Unmap(); err != nil {
		m.file.Close()
		return fmt.Errorf("archivereader: unmap: %w", err)
	}
	return m.file.Close()
}

// Root reinterprets the bytes at offset within m as *T. It performs no
// bounds or layout validation: callers must know T's archived layout
// and that offset was produced by archiving a T-shaped root into the
// file m wraps.
func Root[T any](m *Mapping, offset int) *T {
	return (*T)(m.At(offset))
}
