//go:build !windows

package ioback

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/mansfield-segy/segy/internal/segyerr"
)

// MmapBackend is the memory-mapped Backend variant. It is grounded on
// _examples/other_examples/FreakyLittleDawg-go-openexr's mmapReader (stat,
// then mmap the whole file, then serve ReadAt as a slice copy), adapted
// from the raw syscall package to golang.org/x/sys/unix -- already in the
// module's dependency closure via the teacher's transitive graph, and the
// idiomatic modern choice for Unix syscalls in Go.
type MmapBackend struct {
	f        *os.File
	data     []byte
	writable bool
}

// OpenMmap mmaps path for the access level mode requests. The file is
// also kept open as a plain os.File so Close can release both resources
// deterministically, matching the data-model invariant in spec.md §3
// (the sequential handle remains valid for sync/close even when mapping
// is active).
func OpenMmap(path, mode string) (*MmapBackend, error) {
	if len(mode) == 0 {
		return nil, segyerr.New(segyerr.InvalidArgs, nil, "empty open mode")
	}

	writable := WantsWrite(mode)
	flags := os.O_RDONLY
	if containsRune(mode, 'w') {
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	} else if writable {
		flags = os.O_RDWR
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, segyerr.New(segyerr.FOpenError, err, "open %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, segyerr.New(segyerr.FOpenError, err, "stat %s", path)
	}

	size := info.Size()
	if size == 0 {
		return &MmapBackend{f: f, writable: writable}, nil
	}

	prot := unix.PROT_READ
	if writable {
		prot |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, segyerr.New(segyerr.MmapError, err, "mmap %s", path)
	}

	return &MmapBackend{f: f, data: data, writable: writable}, nil
}

func (b *MmapBackend) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.data)) {
		return 0, segyerr.New(segyerr.MmapInvalid, nil, "read offset %d out of range", off)
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, segyerr.New(segyerr.FReadError, nil, "short read at %d", off)
	}
	return n, nil
}

func (b *MmapBackend) WriteAt(p []byte, off int64) (int, error) {
	if !b.writable {
		return 0, segyerr.New(segyerr.FWriteError, nil, "backend opened read-only")
	}
	if off < 0 || off > int64(len(b.data)) {
		return 0, segyerr.New(segyerr.MmapInvalid, nil, "write offset %d out of range", off)
	}
	n := copy(b.data[off:], p)
	if n < len(p) {
		return n, segyerr.New(segyerr.FWriteError, nil, "short write at %d", off)
	}
	return n, nil
}

func (b *MmapBackend) Size() (int64, error) { return int64(len(b.data)), nil }

// Flush syncs the mapped region. When sync is true it blocks until the
// writeback completes (MS_SYNC); otherwise it only schedules the
// writeback (MS_ASYNC), matching spec.md §5's two flush modes, which
// apply only to the mapped region.
func (b *MmapBackend) Flush(sync bool) error {
	if len(b.data) == 0 {
		return nil
	}
	flags := unix.MS_ASYNC
	if sync {
		flags = unix.MS_SYNC
	}
	if err := unix.Msync(b.data, flags); err != nil {
		return segyerr.New(segyerr.MmapError, err, "msync")
	}
	return nil
}

func (b *MmapBackend) Writable() bool { return b.writable }

func (b *MmapBackend) Close() error {
	var firstErr error
	if len(b.data) > 0 {
		if err := unix.Munmap(b.data); err != nil {
			firstErr = segyerr.New(segyerr.MmapError, err, "munmap")
		}
		b.data = nil
	}
	if err := b.f.Close(); err != nil && firstErr == nil {
		firstErr = segyerr.New(segyerr.FWriteError, err, "close")
	}
	return firstErr
}
