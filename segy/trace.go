package segy

import (
	"math"

	"github.com/mansfield-segy/segy/internal/header"
	"github.com/mansfield-segy/segy/internal/sample"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

// traceStride is the on-disk size of one whole trace (header + body).
func (f *File) traceStride() int64 {
	return int64(header.TraceHeaderSize + f.traceBsize)
}

// traceOffset computes the absolute file offset of trace n, per
// spec.md §4.7: pos = trace0 + n*(240+trace_bsize).
//
// On a platform where seek offsets are capped at a 32-bit signed range
// (spec.md §9's portability note), a single ReadAt/WriteAt call with a
// pos beyond that range would still work correctly here, because Go's
// os.File.ReadAt/WriteAt always take a 64-bit offset -- there is no
// 32-bit seek cursor to chunk around. traceOffsetChunks below exists
// only to exercise and document spec.md §9's requested fallback
// behavior for a hypothetical 32-bit-offset backend, and is unused on
// every platform Go actually targets today.
func (f *File) traceOffset(n int) (int64, error) {
	if n < 0 {
		return 0, segyerr.New(segyerr.InvalidArgs, nil, "negative trace number %d", n)
	}
	return f.trace0 + int64(n)*f.traceStride(), nil
}

// traceOffsetChunks computes the same offset as traceOffset but by
// repeated bounded steps, the way a 32-bit-seek platform would need to
// walk a cursor forward in math.MaxInt32-sized chunks rather than
// seeking absolutely in one call. Unlike the source's loop (spec.md §9
// notes it appears to never iterate, since its condition checks an
// error variable that is always OK on the first pass), this version
// always makes progress: it decrements remaining by exactly chunkMax
// each iteration regardless of any error state.
func traceOffsetChunks(trace0 int64, n int, stride int64) int64 {
	const chunkMax = int64(math.MaxInt32)
	pos := trace0 + int64(n)*stride
	var walked int64
	remaining := pos
	for remaining > chunkMax {
		walked += chunkMax
		remaining -= chunkMax
	}
	return walked + remaining
}

// ReadTraceHeader reads the 240-byte header of trace n.
func (f *File) ReadTraceHeader(n int) ([]byte, error) {
	pos, err := f.traceOffset(n)
	if err != nil {
		return nil, err
	}
	return header.ReadTraceHeader(f.backend, pos)
}

// WriteTraceHeader writes the 240-byte header of trace n.
func (f *File) WriteTraceHeader(n int, buf []byte) error {
	pos, err := f.traceOffset(n)
	if err != nil {
		return err
	}
	return header.WriteTraceHeader(f.backend, pos, buf)
}

// ReadTraceBody reads the raw on-disk sample bytes of trace n, without
// converting them. Use ReadTrace to get native float32 samples.
func (f *File) ReadTraceBody(n int) ([]byte, error) {
	pos, err := f.traceOffset(n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, f.traceBsize)
	if _, err := f.backend.ReadAt(buf, pos+int64(header.TraceHeaderSize)); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteTraceBody writes samples (native float32, length must equal
// SamplesPerTrace) as the sample body of trace n, converting them to the
// file's on-disk sample format. Writing a different number of samples
// than the file declares fails with InvalidArgs and leaves the file
// unchanged, per spec.md §8 scenario 6.
func (f *File) WriteTraceBody(n int, samples []float32) error {
	if len(samples) != f.samplesPerTrace {
		return segyerr.New(segyerr.InvalidArgs, nil,
			"trace has %d samples, got %d", f.samplesPerTrace, len(samples))
	}
	buf := make([]byte, f.traceBsize)
	if err := sample.FromNative(f.sampleFormat, samples, buf); err != nil {
		return err
	}
	pos, err := f.traceOffset(n)
	if err != nil {
		return err
	}
	_, err = f.backend.WriteAt(buf, pos+int64(header.TraceHeaderSize))
	return err
}

// ReadTrace reads both the header and the sample body of trace n,
// returning the header bytes and native float32 samples.
func (f *File) ReadTrace(n int) (traceHeader []byte, samples []float32, err error) {
	traceHeader, err = f.ReadTraceHeader(n)
	if err != nil {
		return nil, nil, err
	}
	body, err := f.ReadTraceBody(n)
	if err != nil {
		return nil, nil, err
	}
	samples, err = sample.ToNative(f.sampleFormat, body, f.samplesPerTrace, nil)
	if err != nil {
		return nil, nil, err
	}
	return traceHeader, samples, nil
}

// WriteTrace writes both the header and sample body of trace n in one
// call.
func (f *File) WriteTrace(n int, traceHeader []byte, samples []float32) error {
	if err := f.WriteTraceHeader(n, traceHeader); err != nil {
		return err
	}
	return f.WriteTraceBody(n, samples)
}
