// Package seglog is a thin wrapper over the standard log package used
// only by the CLI (cmd/segyls) and batch config tooling. The core codec
// and geometry packages never log -- per spec.md §7, every operation that
// can fail returns a status, and logging is left entirely to callers.
// Grounded on the teacher's lib/error/error.go (External/Internal: two
// severities, the second also prints a stack trace).
package seglog

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
)

// External reports a user-facing error and exits with status code. Use
// it for failures the user can fix through their invocation (a bad file
// path, an out-of-range field byte).
func External(code int, format string, a ...interface{}) {
	log.Printf("segyls: "+format, a...)
	os.Exit(code)
}

// Internal reports an error along with a stack trace and exits. Use it
// for failures that indicate a bug in this module rather than bad input.
func Internal(format string, a ...interface{}) {
	log.Println("segyls: internal error:")
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n\n")
	debug.PrintStack()
	os.Exit(1)
}
