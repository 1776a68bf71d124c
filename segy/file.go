// Package segy provides random-access read/write of SEG-Y headers and
// traces, geometry analysis, and IBM/IEEE sample conversion. It is the
// public surface of the module; internal/* packages implement the codec
// and geometry pieces it composes.
package segy

import (
	"github.com/mansfield-segy/segy/internal/geometry"
	"github.com/mansfield-segy/segy/internal/header"
	"github.com/mansfield-segy/segy/internal/ioback"
	"github.com/mansfield-segy/segy/internal/sample"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

// File is an opaque handle to an opened SEG-Y file. It carries the
// underlying I/O backend, the mode it was opened with, and the
// trace-layout parameters derived from the binary header at open time.
// A File is not safe for concurrent use from multiple goroutines; see
// spec.md §5.
type File struct {
	backend ioback.Backend
	mode    string

	trace0         int64
	traceBsize     int
	samplesPerTrace int
	sampleFormat   sample.Format
}

// Open opens path with the given POSIX fopen-style mode, reads the
// binary header, and derives trace0/trace_bsize per spec.md §3's data
// flow. By default it uses the buffered-file I/O backend; pass
// WithMemoryMap(true) to use a memory-mapped backend instead.
func Open(path, mode string, opts ...OpenOption) (*File, error) {
	cfg := &openConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var backend ioback.Backend
	var err error
	if cfg.memoryMap {
		backend, err = ioback.OpenMmap(path, mode)
	} else {
		backend, err = ioback.OpenFile(path, mode)
	}
	if err != nil {
		return nil, err
	}

	f := &File{backend: backend, mode: mode}
	if err := f.loadBinaryHeaderParams(); err != nil {
		backend.Close()
		return nil, err
	}
	return f, nil
}

func (f *File) loadBinaryHeaderParams() error {
	bin, err := header.ReadBinaryHeader(f.backend)
	if err != nil {
		return err
	}

	trace0, err := header.Trace0(bin)
	if err != nil {
		return err
	}

	samples, err := header.SamplesPerTrace(bin)
	if err != nil {
		return err
	}
	if samples < 0 {
		return segyerr.New(segyerr.InvalidArgs, nil, "negative samples-per-trace %d", samples)
	}

	format, err := header.SampleFormat(bin)
	if err != nil {
		return err
	}
	if _, err := sample.BytesPerSample(sample.Format(format)); err != nil {
		return err
	}

	f.trace0 = trace0
	f.samplesPerTrace = samples
	f.sampleFormat = sample.Format(format)
	// Hard four-byte-sample assumption (spec.md §9): the library only
	// round-trips 4-byte formats, so trace_bsize is always samples*4
	// regardless of the declared format's nominal on-disk width.
	f.traceBsize = samples * 4
	return nil
}

// Trace0 returns the file offset of the first trace.
func (f *File) Trace0() int64 { return f.trace0 }

// TraceBsize returns the sample-body size of one trace in bytes.
func (f *File) TraceBsize() int { return f.traceBsize }

// SamplesPerTrace returns the samples-per-trace field read at open time.
func (f *File) SamplesPerTrace() int { return f.samplesPerTrace }

// SampleFormat returns the sample format code read at open time.
func (f *File) SampleFormat() int { return int(f.sampleFormat) }

// TraceCount derives the number of traces in the file from its current
// size, trace0, and trace_bsize, per spec.md §4.6.
func (f *File) TraceCount() (int, error) {
	return geometry.TraceCount(f.backend, f.trace0, f.traceBsize)
}

// Flush commits pending writes. See Backend.Flush for the meaning of
// sync.
func (f *File) Flush(sync bool) error {
	return f.backend.Flush(sync)
}

// Close flushes (synchronously), unmaps if applicable, and closes the
// underlying file, returning the first non-OK status from that sequence,
// per spec.md §5. Close is not idempotent: a second Close on the same
// File reaches an already-closed backend and returns an error rather
// than nil.
func (f *File) Close() error {
	if err := f.backend.Flush(true); err != nil {
		f.backend.Close()
		return err
	}
	return f.backend.Close()
}
