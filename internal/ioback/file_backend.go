package ioback

import (
	"os"

	"github.com/mansfield-segy/segy/internal/segyerr"
)

// FileBackend is the default, sequential-I/O Backend: a thin wrapper over
// *os.File using ReadAt/WriteAt (pread/pwrite under the hood), grounded in
// the teacher's lib/snapio/gadget2.go abstractGadget2.Read, which opens
// the file, seeks to a computed offset, and reads -- the same "stat, seek,
// read" shape, expressed here as random access instead of sequential
// cursor movement.
type FileBackend struct {
	f       *os.File
	writable bool
}

// OpenFile opens path with the given POSIX fopen-style mode and returns a
// FileBackend. Mode is inspected only for presence of '+' or 'w'.
func OpenFile(path, mode string) (*FileBackend, error) {
	if len(mode) == 0 {
		return nil, segyerr.New(segyerr.InvalidArgs, nil, "empty open mode")
	}

	writable := WantsWrite(mode)
	flags := os.O_RDONLY
	switch {
	case containsRune(mode, 'w'):
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case writable:
		flags = os.O_RDWR
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, segyerr.New(segyerr.FOpenError, err, "open %s", path)
	}

	return &FileBackend{f: f, writable: writable}, nil
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func (b *FileBackend) ReadAt(p []byte, off int64) (int, error) {
	n, err := b.f.ReadAt(p, off)
	if err != nil {
		return n, segyerr.New(segyerr.FReadError, err, "read at %d", off)
	}
	return n, nil
}

func (b *FileBackend) WriteAt(p []byte, off int64) (int, error) {
	if !b.writable {
		return 0, segyerr.New(segyerr.FWriteError, nil, "backend opened read-only")
	}
	n, err := b.f.WriteAt(p, off)
	if err != nil {
		return n, segyerr.New(segyerr.FWriteError, err, "write at %d", off)
	}
	return n, nil
}

func (b *FileBackend) Size() (int64, error) {
	info, err := b.f.Stat()
	if err != nil {
		return 0, segyerr.New(segyerr.FSeekError, err, "stat")
	}
	return info.Size(), nil
}

func (b *FileBackend) Flush(sync bool) error {
	if !sync {
		// Synchronous-only backend: an asynchronous flush request is a
		// no-op here, since there is no mapped region to schedule a
		// writeback for (spec.md §5 -- async flush applies only to the
		// mapped region).
		return nil
	}
	if err := b.f.Sync(); err != nil {
		return segyerr.New(segyerr.FWriteError, err, "fsync")
	}
	return nil
}

func (b *FileBackend) Writable() bool { return b.writable }

func (b *FileBackend) Close() error {
	if err := b.f.Close(); err != nil {
		return segyerr.New(segyerr.FWriteError, err, "close")
	}
	return nil
}
