package geometry

import "github.com/mansfield-segy/segy/internal/header"

// lineIndices reads the value of field from num traces starting at
// traceno and stepping by stride, per spec.md §4.6's index-vector
// enumeration.
func lineIndices(r *reader, field, traceno, stride, num int) ([]int, error) {
	out := make([]int, num)
	for i := 0; i < num; i++ {
		h, err := r.traceHeader(traceno)
		if err != nil {
			return nil, err
		}
		v, err := header.GetField(h, field)
		if err != nil {
			return nil, err
		}
		out[i] = int(v)
		traceno += stride
	}
	return out, nil
}

// inlineIndices enumerates the inline index sequence. For an
// inline-sorted file, the step between successive inlines is
// crossline_count*offsets traces (the slow-axis step); for a
// crossline-sorted file, it is offsets.
func inlineIndices(r *reader, il int, sorting Sorting, inlineCount, crosslineCount, offsets int) ([]int, error) {
	switch sorting {
	case InlineSorting:
		return lineIndices(r, il, 0, crosslineCount*offsets, inlineCount)
	case CrosslineSorting:
		return lineIndices(r, il, 0, offsets, inlineCount)
	default:
		return nil, invalidSorting()
	}
}

// crosslineIndices is the symmetric counterpart of inlineIndices.
func crosslineIndices(r *reader, xl int, sorting Sorting, inlineCount, crosslineCount, offsets int) ([]int, error) {
	switch sorting {
	case InlineSorting:
		return lineIndices(r, xl, 0, offsets, crosslineCount)
	case CrosslineSorting:
		return lineIndices(r, xl, 0, inlineCount*offsets, crosslineCount)
	default:
		return nil, invalidSorting()
	}
}

// offsetIndices reads the offset field from the first offsetCount traces.
func offsetIndices(r *reader, offsetField, offsetCount int) ([]int, error) {
	return lineIndices(r, offsetField, 0, 1, offsetCount)
}
