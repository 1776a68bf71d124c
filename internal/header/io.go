package header

import (
	"github.com/mansfield-segy/segy/internal/ebcdic"
	"github.com/mansfield-segy/segy/internal/ioback"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

// ReadTextHeader reads the 3200-byte textual header at file offset 0 from
// backend, transcoding it from EBCDIC to ASCII.
func ReadTextHeader(backend ioback.Backend) ([]byte, error) {
	raw := make([]byte, TextHeaderSize)
	if _, err := backend.ReadAt(raw, 0); err != nil {
		return nil, err
	}
	out := make([]byte, TextHeaderSize)
	ebcdic.Decode(out, raw)
	return out, nil
}

// WriteTextHeaderAt transcodes text from ASCII to EBCDIC and writes it as
// the textual header at the given index: index 0 writes the mandatory
// header at file offset 0; index >= 1 writes the extended textual header
// at offset 3600 + (index-1)*3200, per spec.md §4.4.
func WriteTextHeaderAt(backend ioback.Backend, index int, text []byte) error {
	if index < 0 {
		return segyerr.New(segyerr.InvalidArgs, nil, "negative text header index %d", index)
	}
	if len(text) != TextHeaderSize {
		return segyerr.New(segyerr.InvalidArgs, nil, "text header must be %d bytes, got %d", TextHeaderSize, len(text))
	}

	var offset int64
	if index == 0 {
		offset = 0
	} else {
		offset = int64(TextHeaderSize+BinaryHeaderSize) + int64(index-1)*TextHeaderSize
	}

	raw := make([]byte, TextHeaderSize)
	ebcdic.Encode(raw, text)
	_, err := backend.WriteAt(raw, offset)
	return err
}

// ReadExtendedTextHeader reads extended textual header index (1-based) at
// file offset 3600 + (index-1)*3200.
func ReadExtendedTextHeader(backend ioback.Backend, index int) ([]byte, error) {
	if index < 1 {
		return nil, segyerr.New(segyerr.InvalidArgs, nil, "extended text header index must be >= 1, got %d", index)
	}
	offset := int64(TextHeaderSize+BinaryHeaderSize) + int64(index-1)*TextHeaderSize
	raw := make([]byte, TextHeaderSize)
	if _, err := backend.ReadAt(raw, offset); err != nil {
		return nil, err
	}
	out := make([]byte, TextHeaderSize)
	ebcdic.Decode(out, raw)
	return out, nil
}

// ReadBinaryHeader reads the 400-byte binary header at file offset 3200.
// Unlike the textual header, the binary header is not EBCDIC-transcoded;
// its fields are raw big-endian integers.
func ReadBinaryHeader(backend ioback.Backend) ([]byte, error) {
	buf := make([]byte, BinaryHeaderSize)
	if _, err := backend.ReadAt(buf, TextHeaderSize); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteBinaryHeader writes buf, which must be exactly 400 bytes, as the
// binary header at file offset 3200.
func WriteBinaryHeader(backend ioback.Backend, buf []byte) error {
	if len(buf) != BinaryHeaderSize {
		return segyerr.New(segyerr.InvalidArgs, nil, "binary header must be %d bytes, got %d", BinaryHeaderSize, len(buf))
	}
	_, err := backend.WriteAt(buf, TextHeaderSize)
	return err
}

// ReadTraceHeader reads the 240-byte trace header at file offset pos.
func ReadTraceHeader(backend ioback.Backend, pos int64) ([]byte, error) {
	buf := make([]byte, TraceHeaderSize)
	if _, err := backend.ReadAt(buf, pos); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteTraceHeader writes buf, which must be exactly 240 bytes, at file
// offset pos.
func WriteTraceHeader(backend ioback.Backend, pos int64, buf []byte) error {
	if len(buf) != TraceHeaderSize {
		return segyerr.New(segyerr.InvalidArgs, nil, "trace header must be %d bytes, got %d", TraceHeaderSize, len(buf))
	}
	_, err := backend.WriteAt(buf, pos)
	return err
}

// ExtendedHeaderCount reads the extended-header-count field (binary
// offset 3505) from a binary header buffer.
func ExtendedHeaderCount(binHeader []byte) (int, error) {
	v, err := GetBinaryField(binHeader, 3505)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// SampleFormat reads the sample-format-code field (binary offset 3225).
func SampleFormat(binHeader []byte) (int, error) {
	v, err := GetBinaryField(binHeader, 3225)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// SamplesPerTrace reads the samples-per-trace field (binary offset 3221).
func SamplesPerTrace(binHeader []byte) (int, error) {
	v, err := GetBinaryField(binHeader, 3221)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// SampleInterval reads the sample-interval field (binary offset 3217).
func SampleInterval(binHeader []byte) (int, error) {
	v, err := GetBinaryField(binHeader, 3217)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Trace0 computes the file offset of the first trace: 3600 plus 3200
// bytes for each extended textual header, per spec.md §3.
func Trace0(binHeader []byte) (int64, error) {
	n, err := ExtendedHeaderCount(binHeader)
	if err != nil {
		return 0, err
	}
	return int64(TextHeaderSize+BinaryHeaderSize) + int64(n)*int64(TextHeaderSize), nil
}
