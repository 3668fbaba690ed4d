package runtime

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/mcp-kit/create-mcp-server-kit/internal/logging"
	"github.com/mcp-kit/create-mcp-server-kit/internal/platform"
	"github.com/rs/zerolog"
)

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// process's own streams so the child's interactive output is live.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Logger zerolog.Logger
}

// NewExecRunner returns a runner wired to the process's standard streams.
func NewExecRunner(logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logging.Component(logger, "runtime"),
	}
}

// Run executes name synchronously. No timeout is applied; a child that
// never exits blocks the caller until ctx is cancelled.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, dir string) Result {
	cmdName, cmdArgs := name, args
	if platform.NeedsShell(name) {
		cmdName, cmdArgs = platform.ShellCommand(name, args)
	}

	line := CommandLine(cmdName, cmdArgs)
	logging.LogCommand(r.Logger, cmdName, cmdArgs, dir)

	cmd := exec.CommandContext(ctx, cmdName, cmdArgs...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		r.Logger.Debug().Str("line", line).Msg("Command succeeded")
		return Succeeded()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()
		if status <= 0 {
			// Terminated by a signal.
			status = 1
		}
		r.Logger.Debug().Str("line", line).Int("status", status).Msg("Command exited non-zero")
		return Exited(status)
	}

	r.Logger.Debug().Str("line", line).Err(err).Msg("Command could not be started")
	return SpawnFailed(err)
}
