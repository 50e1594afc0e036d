package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
)

// IO carries the streams of one invocation.
type IO struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance. in may be nil.
func NewIO(in io.Reader, out, errOut io.Writer) *IO {
	return &IO{in: in, out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Stderr returns an IO whose stdout is this IO's stderr, for printing help
// after an error.
func (o *IO) Stderr() *IO {
	return &IO{in: o.in, out: o.errOut, errOut: o.errOut}
}

// Finish reports the outcome of a command and returns its exit code.
//
// [todo.ErrNotFound] is a normal outcome: it prints "Nothing to do" and
// exits 0.
func (o *IO) Finish(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, todo.ErrNotFound):
		o.Println("Nothing to do")

		return exitOK
	case errors.Is(err, context.Canceled), errors.Is(err, errAborted):
		o.ErrPrintln("interrupted")

		return exitInterrupted
	default:
		o.ErrPrintln("error:", err)

		return exitCode(err)
	}
}
