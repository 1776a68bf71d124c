// Package geometry implements the geometry analyzer (spec.md §4.6): given
// a file and the trace-header field identifiers for the inline and
// crossline axes, it deduces sorting direction, offset count, inline and
// crossline counts, and the enumerated index sequences. It is grounded on
// the teacher's lib/particles/id_order.go ZMajorUnigrid for the general
// shape of mapping a linear trace sequence onto a multi-dimensional grid
// index, one level removed: here the grid's shape itself is unknown and
// must be deduced from a handful of probe reads rather than assumed.
package geometry

import (
	"github.com/mansfield-segy/segy/internal/header"
	"github.com/mansfield-segy/segy/internal/ioback"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

// OffsetField is the trace-header byte offset of the offset field, fixed
// by spec.md §4.6.
const OffsetField = 37

// Sorting is the direction spec.md §3 describes: which axis varies
// fastest along the trace index.
type Sorting int

const (
	UnknownSorting Sorting = iota
	InlineSorting
	CrosslineSorting
)

func (s Sorting) String() string {
	switch s {
	case InlineSorting:
		return "inline-sorted"
	case CrosslineSorting:
		return "crossline-sorted"
	default:
		return "unknown"
	}
}

// Geometry is the derived cube shape spec.md §3 describes. It is never
// cached inside a file handle by the core; callers that want to avoid
// re-deriving it across calls own that caching themselves.
type Geometry struct {
	TraceCount     int
	Sorting        Sorting
	Offsets        int
	InlineCount    int
	CrosslineCount int

	InlineIndices    []int
	CrosslineIndices []int
	OffsetIndices    []int

	il, xl         int
	trace0         int64
	traceBsize     int
}

// reader is the minimal trace-header access the analyzer needs. It is
// built directly from a (Backend, trace0, traceBsize) tuple, keeping the
// analyzer decoupled from the public File type.
type reader struct {
	backend    ioback.Backend
	trace0     int64
	traceBsize int
}

func (r *reader) traceHeader(traceno int) ([]byte, error) {
	pos := r.trace0 + int64(traceno)*int64(header.TraceHeaderSize+r.traceBsize)
	return header.ReadTraceHeader(r.backend, pos)
}

// TraceCount implements spec.md §4.6's trace-count derivation: stat the
// file, subtract trace0, divide by (240 + trace_bsize), and fail with
// TraceSizeMismatch if the division has a nonzero remainder.
func TraceCount(backend ioback.Backend, trace0 int64, traceBsize int) (int, error) {
	size, err := backend.Size()
	if err != nil {
		return 0, err
	}
	body := size - trace0
	if body < 0 {
		return 0, segyerr.New(segyerr.TraceSizeMismatch, nil, "file size %d is smaller than trace0 %d", size, trace0)
	}
	stride := int64(header.TraceHeaderSize + traceBsize)
	if stride <= 0 {
		return 0, segyerr.New(segyerr.InvalidArgs, nil, "non-positive trace stride %d", stride)
	}
	if body%stride != 0 {
		return 0, segyerr.New(segyerr.TraceSizeMismatch, nil,
			"file body of %d bytes is not a whole number of %d-byte traces", body, stride)
	}
	return int(body / stride), nil
}

// Analyze runs the full geometry deduction of spec.md §4.6 over a file
// whose trace0/traceBsize have already been derived from the binary
// header. il and xl are the trace-header field identifiers for the
// inline and crossline axes; both must have a nonzero schema width.
func Analyze(backend ioback.Backend, trace0 int64, traceBsize, il, xl int) (*Geometry, error) {
	if header.TraceFieldWidth(il) == 0 || header.TraceFieldWidth(xl) == 0 {
		return nil, segyerr.New(segyerr.InvalidField, nil, "inline/crossline field offsets %d/%d are unrecognized", il, xl)
	}

	r := &reader{backend: backend, trace0: trace0, traceBsize: traceBsize}

	traceCount, err := TraceCount(backend, trace0, traceBsize)
	if err != nil {
		return nil, err
	}

	sorting, err := deduceSorting(r, il, xl, traceCount)
	if err != nil {
		return nil, err
	}

	offsets, err := countOffsets(r, il, xl, traceCount)
	if err != nil {
		return nil, err
	}

	var lineField int
	if sorting == InlineSorting {
		lineField = xl
	} else {
		lineField = il
	}

	l1, l2, err := countLines(r, lineField, offsets, traceCount)
	if err != nil {
		return nil, err
	}

	var inlineCount, crosslineCount int
	if sorting == InlineSorting {
		inlineCount, crosslineCount = l1, l2
	} else {
		crosslineCount, inlineCount = l1, l2
	}

	inlineIdx, err := inlineIndices(r, il, sorting, inlineCount, crosslineCount, offsets)
	if err != nil {
		return nil, err
	}
	crosslineIdx, err := crosslineIndices(r, xl, sorting, inlineCount, crosslineCount, offsets)
	if err != nil {
		return nil, err
	}
	offsetIdx, err := offsetIndices(r, OffsetField, offsets)
	if err != nil {
		return nil, err
	}

	return &Geometry{
		TraceCount:       traceCount,
		Sorting:          sorting,
		Offsets:          offsets,
		InlineCount:      inlineCount,
		CrosslineCount:   crosslineCount,
		InlineIndices:    inlineIdx,
		CrosslineIndices: crosslineIdx,
		OffsetIndices:    offsetIdx,
		il:               il,
		xl:               xl,
		trace0:           trace0,
		traceBsize:       traceBsize,
	}, nil
}
