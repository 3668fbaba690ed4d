package runtime

import (
	"context"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Runner defines the capability of running an external command to
// completion in a working directory.
type Runner interface {
	// Run starts name with args in dir and waits for it to exit. It never
	// returns an error value of its own: both failure shapes are reported
	// through the Result.
	Run(ctx context.Context, name string, args []string, dir string) Result
}

// Result captures the outcome of one external command.
//
// A command that could not be started at all carries Err and Status 1. A
// command that started and exited non-zero carries that Status and no Err.
type Result struct {
	OK     bool
	Status int
	Err    error
}

// Succeeded returns the result of a zero exit.
func Succeeded() Result {
	return Result{OK: true}
}

// Exited returns the result of a process that ran and exited with status.
func Exited(status int) Result {
	if status == 0 {
		return Succeeded()
	}
	return Result{Status: status}
}

// SpawnFailed returns the result of a process that could not be started.
func SpawnFailed(err error) Result {
	return Result{Status: 1, Err: err}
}

// CommandLine renders name and args as a POSIX shell line, quoting only
// where needed. It is used for diagnostics, not for execution.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, s := range append([]string{name}, args...) {
		q, err := syntax.Quote(s, syntax.LangBash)
		if err != nil {
			q = fmt.Sprintf("%q", s)
		}
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}
