package segy

import (
	"errors"

	"github.com/mansfield-segy/segy/internal/segyerr"
)

// Code identifies the category of failure a SEG-Y operation ran into. See
// internal/segyerr for the canonical definitions; it is re-exported here
// so the public API never has to import an internal package directly.
type Code = segyerr.Code

const (
	OK                = segyerr.OK
	FSeekError        = segyerr.FSeekError
	FReadError        = segyerr.FReadError
	FWriteError       = segyerr.FWriteError
	FOpenError        = segyerr.FOpenError
	InvalidField      = segyerr.InvalidField
	InvalidSorting    = segyerr.InvalidSorting
	InvalidOffsets    = segyerr.InvalidOffsets
	InvalidArgs       = segyerr.InvalidArgs
	MissingLineIndex  = segyerr.MissingLineIndex
	TraceSizeMismatch = segyerr.TraceSizeMismatch
	MmapInvalid       = segyerr.MmapInvalid
	MmapError         = segyerr.MmapError
)

// Error is the concrete error type returned by every operation in this
// module that can fail.
type Error = segyerr.Error

// CodeOf extracts the Code from err, returning OK if err is nil and
// InvalidArgs if err is a non-nil error that did not originate in this
// module (a defensive default, since every core operation is expected to
// return a *Error or nil).
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return InvalidArgs
}
