package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mcp-kit/create-mcp-server-kit/internal/scaffold"
)

const (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
)

// Reporter writes user-facing output: progress to stdout, warnings and
// errors to stderr.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
}

// NewReporter returns a Reporter whose prefixes are colored only when
// stderr supports it.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	r := lipgloss.NewRenderer(stderr)
	return &Reporter{
		stdout:       stdout,
		stderr:       stderr,
		errorStyle:   r.NewStyle().Bold(true).Foreground(colorError),
		warningStyle: r.NewStyle().Foreground(colorWarning),
	}
}

// Println writes a line to stdout.
func (r *Reporter) Println(a ...any) {
	fmt.Fprintln(r.stdout, a...)
}

// Warn writes a "Warning:" line to stderr.
func (r *Reporter) Warn(msg string) {
	fmt.Fprintln(r.stderr, r.warningStyle.Render("Warning:")+" "+msg)
}

// Fatal prints err as the invocation's final error and returns the exit
// code to end with.
func (r *Reporter) Fatal(err error) int {
	fmt.Fprintf(r.stderr, "\n%s %s\n\n", r.errorStyle.Render("Error:"), err.Error())
	return scaffold.ExitCode(err)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorDisabled reports whether diagnostics written to w should be plain.
func colorDisabled(w io.Writer) bool {
	return os.Getenv("NO_COLOR") != "" || !isTerminal(w)
}
