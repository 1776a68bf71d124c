// Package sample implements the bulk sample converter (spec.md §4.5):
// walking a buffer of 4-byte on-disk samples and converting each one into
// a native float32 slice (optionally a caller-supplied scratch slice), or
// the reverse. The source buffer is not modified in place.
package sample

import (
	"encoding/binary"
	"math"

	"github.com/mansfield-segy/segy/internal/ibmfloat"
	"github.com/mansfield-segy/segy/internal/segyerr"
)

// Format names the sample format codes spec.md §3 enumerates. Only IBM
// (1) and IEEE (5) float round-trip through this converter; the others
// are acknowledged at the code level but rejected here, per spec.md's
// Non-goals and §9's "hard four-byte-float assumption" note.
type Format int

const (
	IBMFloat4Byte          Format = 1
	SignedInteger4Byte     Format = 2
	SignedShort2Byte       Format = 3
	FixedPointWithGain4Byte Format = 4
	IEEEFloat4Byte         Format = 5
	SignedChar1Byte        Format = 8
)

// BytesPerSample returns the on-disk width of one sample for format, or
// an error for an unrecognized or unsupported code.
func BytesPerSample(format Format) (int, error) {
	switch format {
	case IBMFloat4Byte, SignedInteger4Byte, FixedPointWithGain4Byte, IEEEFloat4Byte:
		return 4, nil
	case SignedShort2Byte:
		return 2, nil
	case SignedChar1Byte:
		return 1, nil
	default:
		return 0, segyerr.New(segyerr.InvalidArgs, nil, "unrecognized sample format code %d", int(format))
	}
}

// ToNative converts n samples from buf, which holds raw on-disk bytes in
// format, into out (grown if necessary, per the teacher's
// lib/compress.Buffer.Resize pattern of reusing scratch allocations),
// returning out. Only IBMFloat4Byte and IEEEFloat4Byte are supported, per
// spec.md's Non-goals ("only 4-byte IBM and 4-byte IEEE are required to
// round-trip through the sample converters").
func ToNative(format Format, buf []byte, n int, out []float32) ([]float32, error) {
	if format != IBMFloat4Byte && format != IEEEFloat4Byte {
		return nil, segyerr.New(segyerr.InvalidArgs, nil, "sample format %d is not a supported conversion target", int(format))
	}
	if len(buf) < n*4 {
		return nil, segyerr.New(segyerr.InvalidArgs, nil, "buffer too short for %d 4-byte samples", n)
	}
	out = growFloat32(out, n)

	for i := 0; i < n; i++ {
		b := buf[i*4 : i*4+4]
		if format == IEEEFloat4Byte {
			bits := binary.BigEndian.Uint32(b)
			out[i] = math.Float32frombits(bits)
		} else {
			var ib [4]byte
			copy(ib[:], b)
			out[i] = ibmfloat.IBMToIEEE(ib)
		}
	}
	return out, nil
}

// FromNative is the inverse of ToNative: it writes len(samples) samples
// into buf (which must be at least 4*len(samples) bytes) in the on-disk
// format.
func FromNative(format Format, samples []float32, buf []byte) error {
	if format != IBMFloat4Byte && format != IEEEFloat4Byte {
		return segyerr.New(segyerr.InvalidArgs, nil, "sample format %d is not a supported conversion target", int(format))
	}
	if len(buf) < len(samples)*4 {
		return segyerr.New(segyerr.InvalidArgs, nil, "buffer too short for %d 4-byte samples", len(samples))
	}

	for i, v := range samples {
		b := buf[i*4 : i*4+4]
		if format == IEEEFloat4Byte {
			binary.BigEndian.PutUint32(b, math.Float32bits(v))
		} else {
			ib := ibmfloat.IEEEToIBM(v)
			copy(b, ib[:])
		}
	}
	return nil
}

func growFloat32(buf []float32, n int) []float32 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float32, n)
}
