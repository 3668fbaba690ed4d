package scaffold

import (
	"errors"
	"fmt"
)

// Kind classifies a generation failure.
type Kind int

const (
	// KindUsage marks malformed arguments.
	KindUsage Kind = iota + 1
	// KindPrecondition marks a check that failed before any write.
	KindPrecondition
	// KindIO marks a filesystem failure while writing output.
	KindIO
	// KindProcess marks a failed external command.
	KindProcess
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindPrecondition:
		return "precondition"
	case KindIO:
		return "io"
	case KindProcess:
		return "process"
	default:
		return "unknown"
	}
}

// Error is a fatal generation error. Code, when non-zero, is the exit code
// the process should end with (a failed child's status).
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Code    int
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return e.Kind.String() + " error"
	}
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Usagef returns a usage error.
func Usagef(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Message: fmt.Sprintf(format, args...)}
}

// Preconditionf returns a precondition error.
func Preconditionf(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// ExitCode maps err to a process exit code: 0 for nil, the carried code
// when one is set, else 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) && e.Code > 0 {
		return e.Code
	}
	return 1
}
