package geometry

import (
	"github.com/mansfield-segy/segy/internal/header"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

// deduceSorting implements spec.md §4.6's sorting deduction, preserving
// the exact tie-break order the degenerate-geometry cases depend on.
func deduceSorting(r *reader, il, xl, traceCount int) (Sorting, error) {
	h0, err := r.traceHeader(0)
	if err != nil {
		return UnknownSorting, err
	}
	il0, err := header.GetField(h0, il)
	if err != nil {
		return UnknownSorting, err
	}
	xl0, err := header.GetField(h0, xl)
	if err != nil {
		return UnknownSorting, err
	}
	off0, err := header.GetField(h0, OffsetField)
	if err != nil {
		return UnknownSorting, err
	}

	// Walk forward from trace 1 while the offset differs from trace 0's,
	// stopping as soon as it matches again (or traces run out). For the
	// common single-offset case this reads exactly trace 1; for multiple
	// offsets sharing one (il, xl), it skips past them to the next
	// location's first trace.
	traceno := 1
	var il1, xl1, off1 int32
	for {
		h, err := r.traceHeader(traceno)
		if err != nil {
			return UnknownSorting, err
		}
		il1, err = header.GetField(h, il)
		if err != nil {
			return UnknownSorting, err
		}
		xl1, err = header.GetField(h, xl)
		if err != nil {
			return UnknownSorting, err
		}
		off1, err = header.GetField(h, OffsetField)
		if err != nil {
			return UnknownSorting, err
		}
		traceno++
		if off0 == off1 || traceno >= traceCount {
			break
		}
	}

	hLast, err := r.traceHeader(traceCount - 1)
	if err != nil {
		return UnknownSorting, err
	}
	ilLast, err := header.GetField(hLast, il)
	if err != nil {
		return UnknownSorting, err
	}
	xlLast, err := header.GetField(hLast, xl)
	if err != nil {
		return UnknownSorting, err
	}

	switch {
	case il0 == ilLast:
		return CrosslineSorting, nil
	case xl0 == xlLast:
		return InlineSorting, nil
	case il0 == il1:
		return InlineSorting, nil
	case xl0 == xl1:
		return CrosslineSorting, nil
	default:
		return UnknownSorting, segyerr.New(segyerr.InvalidSorting, nil, "could not deduce sorting direction")
	}
}
