package header

import "testing"

func TestTraceFieldWidthKnownOffsets(t *testing.T) {
	cases := map[int]int{37: 4, 189: 4, 193: 4, 115: 2, 117: 2}
	for offset, want := range cases {
		if got := TraceFieldWidth(offset); got != want {
			t.Errorf("TraceFieldWidth(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestTraceFieldWidthUnrecognizedOffset(t *testing.T) {
	if got := TraceFieldWidth(2); got != 0 {
		t.Errorf("TraceFieldWidth(2) = %d, want 0", got)
	}
}

func TestBinaryFieldWidthKnownOffsets(t *testing.T) {
	cases := map[int]int{3217: 2, 3221: 2, 3225: 2, 3505: 2}
	for offset, want := range cases {
		if got := BinaryFieldWidth(offset); got != want {
			t.Errorf("BinaryFieldWidth(%d) = %d, want %d", offset, got, want)
		}
	}
}

func TestGetSetFieldWidth4RoundTrip(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	if err := SetField(buf, 189, -42); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	got, err := GetField(buf, 189)
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if got != -42 {
		t.Errorf("GetField(189) = %d, want -42", got)
	}
}

func TestGetSetFieldWidth2RoundTrip(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	if err := SetField(buf, 115, -7); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	got, err := GetField(buf, 115)
	if err != nil {
		t.Fatalf("GetField: %v", err)
	}
	if got != -7 {
		t.Errorf("GetField(115) = %d, want -7", got)
	}
}

func TestGetFieldUnrecognizedOffsetErrors(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	if _, err := GetField(buf, 2); err == nil {
		t.Fatalf("expected error for unrecognized offset")
	}
}

func TestGetFieldOutOfRangeErrors(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	if _, err := GetField(buf, 1000); err == nil {
		t.Fatalf("expected error for out-of-range offset")
	}
	if _, err := GetField(buf, 0); err == nil {
		t.Fatalf("expected error for offset 0")
	}
}

func TestBinaryFieldRoundTrip(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)
	if err := SetBinaryField(buf, 3221, 1501); err != nil {
		t.Fatalf("SetBinaryField: %v", err)
	}
	got, err := GetBinaryField(buf, 3221)
	if err != nil {
		t.Fatalf("GetBinaryField: %v", err)
	}
	if got != 1501 {
		t.Errorf("GetBinaryField(3221) = %d, want 1501", got)
	}
}

func TestBinaryFieldOutOfRangeErrors(t *testing.T) {
	buf := make([]byte, BinaryHeaderSize)
	if _, err := GetBinaryField(buf, 100); err == nil {
		t.Fatalf("expected error for offset below text header size")
	}
}
