package segy

import "github.com/mansfield-segy/segy/internal/geometry"

// Sorting identifies which axis varies fastest along the trace index.
type Sorting = geometry.Sorting

const (
	UnknownSorting   = geometry.UnknownSorting
	InlineSorting    = geometry.InlineSorting
	CrosslineSorting = geometry.CrosslineSorting
)

// OffsetField is the trace-header byte offset of the offset field, fixed
// by spec.md §4.6.
const OffsetField = geometry.OffsetField

// Geometry is the derived cube shape spec.md §3 describes: sorting
// direction, offset count, inline/crossline counts, and the enumerated
// index sequences for each axis.
type Geometry = geometry.Geometry

// LineMetrics bundles the stride/offset values a caller needs to read or
// write a line without re-deriving them from the raw geometry fields.
type LineMetrics = geometry.LineMetrics

// AnalyzeGeometry runs the geometry analyzer (spec.md §4.6) over the
// file, given the trace-header field identifiers for the inline and
// crossline axes. It is never cached inside the File by the core -- call
// it again if the file's trace headers change.
func (f *File) AnalyzeGeometry(il, xl int) (*Geometry, error) {
	return geometry.Analyze(f.backend, f.trace0, f.traceBsize, il, xl)
}
