package ebcdic

import "encoding/binary"

// GetUint16 and GetUint32 read an unsigned big-endian integer at offset 0
// of buf. All multi-byte fields in a SEG-Y file are big-endian (§6).
func GetUint16(buf []byte) uint16 { return binary.BigEndian.Uint16(buf) }
func GetUint32(buf []byte) uint32 { return binary.BigEndian.Uint32(buf) }

// PutUint16 and PutUint32 write an unsigned big-endian integer to buf.
func PutUint16(buf []byte, v uint16) { binary.BigEndian.PutUint16(buf, v) }
func PutUint32(buf []byte, v uint32) { binary.BigEndian.PutUint32(buf, v) }

// GetInt16 and GetInt32 read a big-endian integer and sign-extend it to
// int32.
func GetInt16(buf []byte) int32 { return int32(int16(GetUint16(buf))) }
func GetInt32(buf []byte) int32 { return int32(GetUint32(buf)) }

// PutInt32 writes a 4-byte signed big-endian integer.
func PutInt32(buf []byte, v int32) { PutUint32(buf, uint32(v)) }

// PutInt16 writes a 2-byte signed big-endian integer, truncating to 16
// bits. Values outside the int16 range are not rejected, here or by the
// field schema's setters; only their low 16 bits are stored.
func PutInt16(buf []byte, v int32) { PutUint16(buf, uint16(int16(v))) }
