package geometry

import "github.com/mansfield-segy/segy/internal/segyerr"

func invalidSorting() error {
	return segyerr.New(segyerr.InvalidSorting, nil, "geometry has no valid sorting direction")
}

// InlineStride and CrosslineStride implement spec.md §4.6's stride
// computations: for an inline-sorted file inline stride is 1 and
// crossline stride is crossline_count; for a crossline-sorted file
// crossline stride is 1 and inline stride is inline_count.
func (g *Geometry) InlineStride() (int, error) {
	switch g.Sorting {
	case CrosslineSorting:
		return g.InlineCount, nil
	case InlineSorting:
		return 1, nil
	default:
		return 0, invalidSorting()
	}
}

func (g *Geometry) CrosslineStride() (int, error) {
	switch g.Sorting {
	case CrosslineSorting:
		return 1, nil
	case InlineSorting:
		return g.CrosslineCount, nil
	default:
		return 0, invalidSorting()
	}
}

// LineMetrics is the additive convenience query from SPEC_FULL.md §3: it
// bundles the inline/crossline strides and offset count that a caller
// needs to read a line, instead of forcing it to re-derive them from the
// raw geometry fields on every call.
type LineMetrics struct {
	InlineStride    int
	CrosslineStride int
	Offsets         int
}

func (g *Geometry) LineMetrics() (LineMetrics, error) {
	il, err := g.InlineStride()
	if err != nil {
		return LineMetrics{}, err
	}
	xl, err := g.CrosslineStride()
	if err != nil {
		return LineMetrics{}, err
	}
	return LineMetrics{InlineStride: il, CrosslineStride: xl, Offsets: g.Offsets}, nil
}

// indexOf returns the position of lineno in indices, or -1 if absent.
func indexOf(lineno int, indices []int) int {
	for i, v := range indices {
		if v == lineno {
			return i
		}
	}
	return -1
}

// InlineTrace0 implements spec.md §4.6's line-start computation for an
// inline line: find lineno's position in InlineIndices, and, if the
// inline axis is the fast one (stride 1), multiply by the crossline
// line's length; then multiply by offsets.
func (g *Geometry) InlineTrace0(lineno int) (int, error) {
	idx := indexOf(lineno, g.InlineIndices)
	if idx < 0 {
		return 0, segyerr.New(segyerr.MissingLineIndex, nil, "inline %d is not present in this file", lineno)
	}
	stride, err := g.InlineStride()
	if err != nil {
		return 0, err
	}
	if stride == 1 {
		idx *= g.CrosslineCount
	}
	return idx * g.Offsets, nil
}

// CrosslineTrace0 is the symmetric counterpart of InlineTrace0.
func (g *Geometry) CrosslineTrace0(lineno int) (int, error) {
	idx := indexOf(lineno, g.CrosslineIndices)
	if idx < 0 {
		return 0, segyerr.New(segyerr.MissingLineIndex, nil, "crossline %d is not present in this file", lineno)
	}
	stride, err := g.CrosslineStride()
	if err != nil {
		return 0, err
	}
	if stride == 1 {
		idx *= g.InlineCount
	}
	return idx * g.Offsets, nil
}
