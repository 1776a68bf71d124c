// Package segyerr defines the stable error-code taxonomy shared by every
// layer of the codec (byte/float codecs, field schema, geometry analyzer,
// I/O substrate) so that a caller several layers up can still recover the
// original Code via errors.As without each layer needing to import the
// public segy package (which would create an import cycle, since segy
// imports these internal packages).
package segyerr

import "fmt"

// Code is a stable, small integer identifying the category of failure a
// SEG-Y operation ran into.
type Code int

const (
	OK Code = iota
	FSeekError
	FReadError
	FWriteError
	FOpenError
	InvalidField
	InvalidSorting
	InvalidOffsets
	InvalidArgs
	MissingLineIndex
	TraceSizeMismatch
	MmapInvalid
	MmapError
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case FSeekError:
		return "seek error"
	case FReadError:
		return "read error"
	case FWriteError:
		return "write error"
	case FOpenError:
		return "open error"
	case InvalidField:
		return "invalid field"
	case InvalidSorting:
		return "invalid sorting"
	case InvalidOffsets:
		return "invalid offsets"
	case InvalidArgs:
		return "invalid arguments"
	case MissingLineIndex:
		return "missing line index"
	case TraceSizeMismatch:
		return "trace size mismatch"
	case MmapInvalid:
		return "invalid memory map"
	case MmapError:
		return "memory map error"
	default:
		return fmt.Sprintf("unknown error code %d", int(c))
	}
}

// Error wraps a Code with a human-readable message and, when the failure
// originated from the OS, the underlying cause.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("segy: %s: %s: %s", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("segy: %s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error, formatting msg like fmt.Sprintf.
func New(code Code, cause error, format string, a ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, a...), Err: cause}
}
