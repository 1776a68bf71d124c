package segy

import "testing"

func TestOpenReadsBinaryHeaderParams(t *testing.T) {
	path := fixtureCube(t)
	f, err := Open(path, "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if f.SamplesPerTrace() != 4 {
		t.Errorf("SamplesPerTrace = %d, want 4", f.SamplesPerTrace())
	}
	if f.SampleFormat() != 5 {
		t.Errorf("SampleFormat = %d, want 5", f.SampleFormat())
	}
	if f.TraceBsize() != 16 {
		t.Errorf("TraceBsize = %d, want 16", f.TraceBsize())
	}
	if f.Trace0() != 3600 {
		t.Errorf("Trace0 = %d, want 3600", f.Trace0())
	}

	count, err := f.TraceCount()
	if err != nil {
		t.Fatalf("TraceCount: %v", err)
	}
	if count != 4 {
		t.Errorf("TraceCount = %d, want 4", count)
	}
}

func TestReadWriteTraceRoundTrip(t *testing.T) {
	path := fixtureCube(t)
	f, err := Open(path, "r+b")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	_, samples, err := f.ReadTrace(2)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	want := []float32{20, 21, 22, 23}
	for i, v := range want {
		if samples[i] != v {
			t.Errorf("trace 2 sample %d = %v, want %v", i, samples[i], v)
		}
	}

	newSamples := []float32{100, 200, 300, 400}
	if err := f.WriteTraceBody(2, newSamples); err != nil {
		t.Fatalf("WriteTraceBody: %v", err)
	}
	_, got, err := f.ReadTrace(2)
	if err != nil {
		t.Fatalf("ReadTrace after write: %v", err)
	}
	for i, v := range newSamples {
		if got[i] != v {
			t.Errorf("after write, trace 2 sample %d = %v, want %v", i, got[i], v)
		}
	}
}

func TestWriteTraceBodyWrongLengthFailsUnchanged(t *testing.T) {
	path := fixtureCube(t)
	f, err := Open(path, "r+b")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	_, before, err := f.ReadTrace(1)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}

	err = f.WriteTraceBody(1, []float32{1, 2, 3})
	if err == nil {
		t.Fatalf("expected error writing wrong-length trace body")
	}
	if CodeOf(err) != InvalidArgs {
		t.Errorf("CodeOf(err) = %v, want InvalidArgs", CodeOf(err))
	}

	_, after, err := f.ReadTrace(1)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("trace 1 changed after failed write: before=%v after=%v", before, after)
		}
	}
}

func TestReadOnlyFileRejectsWrites(t *testing.T) {
	path := fixtureCube(t)
	f, err := Open(path, "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if err := f.WriteTraceBody(0, []float32{1, 2, 3, 4}); err == nil {
		t.Fatalf("expected error writing to a read-only backend")
	}
}

func TestAnalyzeGeometryThroughFile(t *testing.T) {
	path := fixtureCube(t)
	f, err := Open(path, "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	geo, err := f.AnalyzeGeometry(189, 193)
	if err != nil {
		t.Fatalf("AnalyzeGeometry: %v", err)
	}
	if geo.InlineCount != 2 || geo.CrosslineCount != 2 {
		t.Fatalf("geometry = %+v, want 2x2", geo)
	}
	if geo.Sorting != InlineSorting {
		t.Fatalf("Sorting = %v, want InlineSorting", geo.Sorting)
	}
}

func TestReadLineConcatenatesTraces(t *testing.T) {
	path := fixtureCube(t)
	f, err := Open(path, "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	geo, err := f.AnalyzeGeometry(189, 193)
	if err != nil {
		t.Fatalf("AnalyzeGeometry: %v", err)
	}
	lm, err := geo.LineMetrics()
	if err != nil {
		t.Fatalf("LineMetrics: %v", err)
	}
	trace0, err := geo.InlineTrace0(1)
	if err != nil {
		t.Fatalf("InlineTrace0: %v", err)
	}

	line, err := f.ReadLine(trace0, geo.CrosslineCount, lm.InlineStride, lm.Offsets)
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	want := []float32{0, 1, 2, 3, 10, 11, 12, 13}
	for i, v := range want {
		if line[i] != v {
			t.Errorf("line sample %d = %v, want %v", i, line[i], v)
		}
	}
}
