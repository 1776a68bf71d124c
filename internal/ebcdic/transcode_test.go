package ebcdic

import "testing"

func TestRoundTripAllBytes(t *testing.T) {
	var all [256]byte
	for i := range all {
		all[i] = byte(i)
	}

	var ascii, back [256]byte
	Decode(ascii[:], all[:])
	Encode(back[:], ascii[:])
	if back != all {
		t.Fatalf("e2a then a2e did not round-trip every byte")
	}

	var ebcd, back2 [256]byte
	Encode(ebcd[:], all[:])
	Decode(back2[:], ebcd[:])
	if back2 != all {
		t.Fatalf("a2e then e2a did not round-trip every byte")
	}
}

func TestDecodeEncodeLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mismatched lengths")
		}
	}()
	Decode(make([]byte, 2), make([]byte, 3))
}

func TestDecodeStringStopsAtNull(t *testing.T) {
	src := []byte{0xC1, 0xC2, 0xC3, 0x00, 0xC4}
	got := DecodeString(src)
	if got != "ABC" {
		t.Fatalf("DecodeString = %q, want ABC", got)
	}
}

func TestEncodeStringPadsWithZero(t *testing.T) {
	dst := make([]byte, 6)
	EncodeString(dst, "AB")
	want := []byte{0xC1, 0xC2, 0, 0, 0, 0}
	if string(dst) != string(want) {
		t.Fatalf("EncodeString = %v, want %v", dst, want)
	}
}

func TestEncodeStringTruncatesOverLongInput(t *testing.T) {
	dst := make([]byte, 2)
	EncodeString(dst, "ABCD")
	want := []byte{0xC1, 0xC2}
	if string(dst) != string(want) {
		t.Fatalf("EncodeString = %v, want %v", dst, want)
	}
}
