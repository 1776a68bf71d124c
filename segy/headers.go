package segy

import "github.com/mansfield-segy/segy/internal/header"

// ReadTextHeader reads the mandatory 3200-byte textual header, decoded
// from EBCDIC to ASCII.
func (f *File) ReadTextHeader() ([]byte, error) {
	return header.ReadTextHeader(f.backend)
}

// WriteTextHeaderAt encodes text (ASCII) to EBCDIC and writes it as the
// textual header at index: 0 for the mandatory header, >=1 for the
// extended textual header at that 1-based position.
func (f *File) WriteTextHeaderAt(index int, text []byte) error {
	return header.WriteTextHeaderAt(f.backend, index, text)
}

// ReadExtendedTextHeader reads extended textual header index (1-based).
func (f *File) ReadExtendedTextHeader(index int) ([]byte, error) {
	return header.ReadExtendedTextHeader(f.backend, index)
}

// ReadBinaryHeader reads the raw 400-byte binary header.
func (f *File) ReadBinaryHeader() ([]byte, error) {
	return header.ReadBinaryHeader(f.backend)
}

// WriteBinaryHeader writes buf as the 400-byte binary header and
// refreshes the trace-layout parameters derived from it, since a write
// may have changed the sample count, format, or extended-header count.
func (f *File) WriteBinaryHeader(buf []byte) error {
	if err := header.WriteBinaryHeader(f.backend, buf); err != nil {
		return err
	}
	return f.loadBinaryHeaderParams()
}

// GetBinaryField reads one binary-header field from an already-read
// binary header buffer (see ReadBinaryHeader).
func GetBinaryField(binHeader []byte, offset int) (int32, error) {
	return header.GetBinaryField(binHeader, offset)
}

// SetBinaryField writes one binary-header field into buf.
func SetBinaryField(binHeader []byte, offset int, val int32) error {
	return header.SetBinaryField(binHeader, offset, val)
}

// GetField reads one trace-header field from an already-read trace
// header buffer (see File.ReadTraceHeader).
func GetField(traceHeader []byte, offset int) (int32, error) {
	return header.GetField(traceHeader, offset)
}

// SetField writes one trace-header field into buf.
func SetField(traceHeader []byte, offset int, val int32) error {
	return header.SetField(traceHeader, offset, val)
}
