package geometry

import "github.com/mansfield-segy/segy/internal/header"

// countOffsets implements spec.md §4.6's offset-count derivation: if
// there is only one trace, the count is 1; otherwise walk forward from
// trace 0 until a trace whose (il, xl) differs from trace 0's.
func countOffsets(r *reader, il, xl, traceCount int) (int, error) {
	if traceCount == 1 {
		return 1, nil
	}

	h0, err := r.traceHeader(0)
	if err != nil {
		return 0, err
	}
	il0, err := header.GetField(h0, il)
	if err != nil {
		return 0, err
	}
	xl0, err := header.GetField(h0, xl)
	if err != nil {
		return 0, err
	}

	offsets := 0
	for {
		offsets++
		if offsets == traceCount {
			break
		}
		h, err := r.traceHeader(offsets)
		if err != nil {
			return 0, err
		}
		il1, err := header.GetField(h, il)
		if err != nil {
			return 0, err
		}
		xl1, err := header.GetField(h, xl)
		if err != nil {
			return 0, err
		}
		if il1 != il0 || xl1 != xl0 {
			break
		}
	}
	return offsets, nil
}

// countLines implements spec.md §4.6's line-count derivation along the
// slow axis named by field: step by offsets from trace 0, counting cells
// until the trace at the cursor matches trace 0's (field, offset) pair.
// The other axis is derived as trace_count / (this count * offsets).
func countLines(r *reader, field, offsets, traceCount int) (otherCount, thisCount int, err error) {
	h0, err := r.traceHeader(0)
	if err != nil {
		return 0, 0, err
	}
	firstLine, err := header.GetField(h0, field)
	if err != nil {
		return 0, 0, err
	}
	firstOffset, err := header.GetField(h0, OffsetField)
	if err != nil {
		return 0, 0, err
	}

	lines := 1
	curr := offsets
	for {
		h, err := r.traceHeader(curr)
		if err != nil {
			return 0, 0, err
		}
		ln, err := header.GetField(h, field)
		if err != nil {
			return 0, 0, err
		}
		off, err := header.GetField(h, OffsetField)
		if err != nil {
			return 0, 0, err
		}
		if off == firstOffset && ln == firstLine {
			break
		}
		curr += offsets
		lines++
	}

	lineLength := lines * offsets
	other := traceCount / lineLength
	return other, lines, nil
}
