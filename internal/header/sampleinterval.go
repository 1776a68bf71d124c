package header

import "github.com/mansfield-segy/segy/internal/segyerr"

// ReconcileSampleInterval implements the rule spec.md §9 documents as the
// intended behavior of the source's half-written reconciliation routine:
// prefer the trace header's sample interval when both the binary and
// trace headers are nonzero and agree; otherwise use whichever of the two
// is nonzero; signal a mismatch when both are nonzero and disagree.
func ReconcileSampleInterval(binaryInterval, traceInterval int) (int, error) {
	switch {
	case binaryInterval != 0 && traceInterval != 0:
		if binaryInterval == traceInterval {
			return traceInterval, nil
		}
		return 0, segyerr.New(segyerr.InvalidArgs, nil,
			"binary header sample interval %d disagrees with trace header sample interval %d",
			binaryInterval, traceInterval)
	case traceInterval != 0:
		return traceInterval, nil
	case binaryInterval != 0:
		return binaryInterval, nil
	default:
		return 0, nil
	}
}
