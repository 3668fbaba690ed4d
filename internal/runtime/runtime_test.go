package runtime

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	goruntime "runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(stdout, stderr *bytes.Buffer) *ExecRunner {
	return &ExecRunner{
		Stdin:  bytes.NewReader(nil),
		Stdout: stdout,
		Stderr: stderr,
		Logger: zerolog.Nop(),
	}
}

func requireShell(t *testing.T) {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("POSIX shell tests are not run on Windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	dir := t.TempDir()
	res := newTestRunner(&stdout, &stderr).Run(context.Background(), "sh", []string{"-c", "pwd; echo oops >&2"}, dir)

	assert.True(t, res.OK)
	assert.Equal(t, 0, res.Status)
	assert.NoError(t, res.Err)
	assert.Contains(t, stdout.String(), "/")
	assert.Contains(t, stderr.String(), "oops")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	res := newTestRunner(&stdout, &stderr).Run(context.Background(), "sh", []string{"-c", "exit 42"}, t.TempDir())

	assert.False(t, res.OK)
	assert.Equal(t, 42, res.Status)
	assert.NoError(t, res.Err, "non-zero exit should not carry a spawn error")
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	res := newTestRunner(&stdout, &stderr).Run(context.Background(), "definitely-not-a-real-binary-xyz", nil, t.TempDir())

	assert.False(t, res.OK)
	assert.Equal(t, 1, res.Status)
	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, exec.ErrNotFound))
}

func TestExecRunner_MissingDir(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	res := newTestRunner(&stdout, &stderr).Run(context.Background(), "sh", []string{"-c", "true"}, "/does/not/exist/anywhere")

	assert.False(t, res.OK)
	assert.Equal(t, 1, res.Status)
	assert.Error(t, res.Err)
}

func TestResultConstructors(t *testing.T) {
	assert.Equal(t, Result{OK: true}, Exited(0))
	assert.Equal(t, Result{Status: 7}, Exited(7))

	err := errors.New("boom")
	assert.Equal(t, Result{Status: 1, Err: err}, SpawnFailed(err))
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "npm install", CommandLine("npm", []string{"install"}))
	assert.Equal(t, "git init", CommandLine("git", []string{"init"}))
	assert.Equal(t, "yarn", CommandLine("yarn", nil))
	assert.Equal(t, "sh -c 'exit 1'", CommandLine("sh", []string{"-c", "exit 1"}))
}

func TestFakeRunner(t *testing.T) {
	f := NewFakeRunner()
	f.Results["npm"] = Exited(3)

	res := f.Run(context.Background(), "git", []string{"init"}, "/tmp/a")
	assert.True(t, res.OK)

	res = f.Run(context.Background(), "npm", []string{"install"}, "/tmp/a")
	assert.Equal(t, 3, res.Status)

	assert.Equal(t, []string{"git", "npm"}, f.Names())
	assert.Equal(t, Call{Name: "npm", Args: []string{"install"}, Dir: "/tmp/a"}, f.Calls[1])
}
