package geometry

import (
	"reflect"
	"testing"

	"github.com/mansfield-segy/segy/internal/header"
)

// buildSmallCube assembles the 25-trace, 5 inline x 5 crossline x 1 offset,
// inline-sorted fixture: trace n has inline 1+n/5, crossline 20+n%5, offset
// 1, and no sample body.
func buildSmallCube(t *testing.T) (*memBackend, int64, int) {
	t.Helper()
	const (
		trace0     = int64(header.TextHeaderSize + header.BinaryHeaderSize)
		traceBsize = 0
		traceCount = 25
	)
	backend := newMemBackend(int(trace0) + traceCount*header.TraceHeaderSize)

	for n := 0; n < traceCount; n++ {
		buf := make([]byte, header.TraceHeaderSize)
		il := int32(1 + n/5)
		xl := int32(20 + n%5)
		if err := header.SetField(buf, 189, il); err != nil {
			t.Fatalf("SetField inline: %v", err)
		}
		if err := header.SetField(buf, 193, xl); err != nil {
			t.Fatalf("SetField crossline: %v", err)
		}
		if err := header.SetField(buf, OffsetField, 1); err != nil {
			t.Fatalf("SetField offset: %v", err)
		}
		pos := trace0 + int64(n*header.TraceHeaderSize)
		if err := header.WriteTraceHeader(backend, pos, buf); err != nil {
			t.Fatalf("WriteTraceHeader: %v", err)
		}
	}

	return backend, trace0, traceBsize
}

func TestAnalyzeSmallInlineSortedCube(t *testing.T) {
	backend, trace0, traceBsize := buildSmallCube(t)

	geo, err := Analyze(backend, trace0, traceBsize, 189, 193)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if geo.TraceCount != 25 {
		t.Errorf("TraceCount = %d, want 25", geo.TraceCount)
	}
	if geo.Sorting != InlineSorting {
		t.Errorf("Sorting = %v, want InlineSorting", geo.Sorting)
	}
	if geo.Offsets != 1 {
		t.Errorf("Offsets = %d, want 1", geo.Offsets)
	}
	if geo.InlineCount != 5 {
		t.Errorf("InlineCount = %d, want 5", geo.InlineCount)
	}
	if geo.CrosslineCount != 5 {
		t.Errorf("CrosslineCount = %d, want 5", geo.CrosslineCount)
	}
	if !reflect.DeepEqual(geo.InlineIndices, []int{1, 2, 3, 4, 5}) {
		t.Errorf("InlineIndices = %v, want [1 2 3 4 5]", geo.InlineIndices)
	}
	if !reflect.DeepEqual(geo.CrosslineIndices, []int{20, 21, 22, 23, 24}) {
		t.Errorf("CrosslineIndices = %v, want [20 21 22 23 24]", geo.CrosslineIndices)
	}
	if !reflect.DeepEqual(geo.OffsetIndices, []int{1}) {
		t.Errorf("OffsetIndices = %v, want [1]", geo.OffsetIndices)
	}
}

func TestAnalyzeRejectsUnrecognizedFields(t *testing.T) {
	backend, trace0, traceBsize := buildSmallCube(t)
	if _, err := Analyze(backend, trace0, traceBsize, 2, 193); err == nil {
		t.Fatalf("expected error for unrecognized inline field")
	}
}

func TestTraceCountRejectsPartialTrace(t *testing.T) {
	backend, trace0, _ := buildSmallCube(t)
	// Truncate by one byte so the body is not a whole number of traces.
	backend.data = backend.data[:len(backend.data)-1]
	if _, err := TraceCount(backend, trace0, 0); err == nil {
		t.Fatalf("expected TraceSizeMismatch for truncated file")
	}
}

func TestLineStartTraceNumbers(t *testing.T) {
	backend, trace0, traceBsize := buildSmallCube(t)
	geo, err := Analyze(backend, trace0, traceBsize, 189, 193)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	trace0ForInline3, err := geo.InlineTrace0(3)
	if err != nil {
		t.Fatalf("InlineTrace0(3): %v", err)
	}
	if trace0ForInline3 != 10 {
		t.Errorf("InlineTrace0(3) = %d, want 10", trace0ForInline3)
	}

	trace0ForCrossline22, err := geo.CrosslineTrace0(22)
	if err != nil {
		t.Fatalf("CrosslineTrace0(22): %v", err)
	}
	if trace0ForCrossline22 != 2 {
		t.Errorf("CrosslineTrace0(22) = %d, want 2", trace0ForCrossline22)
	}

	if _, err := geo.InlineTrace0(99); err == nil {
		t.Fatalf("expected MissingLineIndex for absent inline")
	}
}

func TestLineMetrics(t *testing.T) {
	backend, trace0, traceBsize := buildSmallCube(t)
	geo, err := Analyze(backend, trace0, traceBsize, 189, 193)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	lm, err := geo.LineMetrics()
	if err != nil {
		t.Fatalf("LineMetrics: %v", err)
	}
	if lm.InlineStride != 1 || lm.CrosslineStride != 5 || lm.Offsets != 1 {
		t.Errorf("LineMetrics = %+v, want {InlineStride:1 CrosslineStride:5 Offsets:1}", lm)
	}
}
