// Package ibmfloat converts between the IBM-hosted base-16 floating point
// representation used on disk by SEG-Y and the native IEEE-754 single
// precision float used in memory. Both directions are bit-exact; the
// renormalization and exponent-bias arithmetic follow the classic
// ibm2ieee/ieee2ibm transform, cross-checked against segyio's C
// implementation, with the bit-manipulation style (explicit shifts and
// masks over the raw uint32 representation of a float32) grounded on the
// teacher's quantization code in lib/compress/compress.go.
package ibmfloat

import "math"

// IBMToIEEE converts a 4-byte big-endian IBM float, as read directly off
// disk, to a native float32.
func IBMToIEEE(b [4]byte) float32 {
	raw := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	sign := raw >> 31
	fr := raw << 1
	exp := int(fr >> 25)
	fr <<= 7

	if fr == 0 {
		return math.Float32frombits(sign << 31)
	}

	// Adjust the exponent from base-16 offset-64 (radix point before the
	// first hex digit) to base-2 offset-127 (radix point after the first
	// bit): (exp-64)*4 + 127 - 1 == (exp<<2) - 130.
	exp = (exp << 2) - 130

	// Renormalize: at most three iterations for legal input.
	for fr < 0x80000000 {
		exp--
		fr <<= 1
	}

	switch {
	case exp <= 0:
		if exp < -24 {
			fr = 0
		} else {
			fr >>= uint(-exp)
		}
		exp = 0
	case exp >= 255:
		fr = 0
		exp = 255
	default:
		fr <<= 1 // drop the now-implicit leading one
	}

	bits := (fr >> 9) | (uint32(exp) << 23) | (sign << 31)
	return math.Float32frombits(bits)
}

// IEEEToIBM converts a native float32 to its 4-byte big-endian IBM
// representation.
func IEEEToIBM(f float32) [4]byte {
	raw := math.Float32bits(f)

	sign := raw >> 31
	fr := raw << 1
	exp := int(fr >> 24)
	fr <<= 8

	var outExp uint32
	switch {
	case exp == 255: // Inf or NaN: map to the largest representable magnitude
		fr = 0xffffff00
		outExp = 0x7f
	case exp > 0:
		fr = (fr >> 1) | 0x80000000
		outExp = adjustExponent(exp, &fr)
	default:
		if fr == 0 {
			return packIBM(sign, 0, 0)
		}
		outExp = adjustExponent(exp, &fr)
	}

	return packIBM(sign, outExp, fr)
}

// adjustExponent converts exp from base-2 offset-127 (radix after the
// first bit) to base-16 offset-64 (radix before the first hex digit),
// right-shifting fr to align the radix, and renormalizes the defensive
// case where the base-16 fraction ends up smaller than 2^28 (never
// exercised by a well-formed normalized input).
func adjustExponent(exp int, fr *uint32) uint32 {
	exp += 130
	*fr >>= uint((-exp) & 3)
	exp = (exp + 3) >> 2

	for *fr < 0x10000000 {
		exp--
		*fr <<= 4
	}

	return uint32(exp)
}

func packIBM(sign, exp, fr uint32) [4]byte {
	bits := (fr >> 8) | (exp << 24) | (sign << 31)
	var b [4]byte
	b[0] = byte(bits >> 24)
	b[1] = byte(bits >> 16)
	b[2] = byte(bits >> 8)
	b[3] = byte(bits)
	return b
}
