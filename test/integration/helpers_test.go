//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcp-kit/create-mcp-server-kit/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	WorkDir    string // working directory of the invocation
	ConfigPath string // config file path (absent unless a test writes it)
	BinDir     string // directory prepended to PATH for fake tools
}

// result is the outcome of one CLI invocation.
type result struct {
	Code   int
	Stdout string
	Stderr string
}

// setupTestEnv creates isolated temp directories. PATH is left untouched
// unless a test calls isolatePath.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		WorkDir:    t.TempDir(),
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		BinDir:     t.TempDir(),
	}
	t.Setenv("CREATE_MCP_SERVER_KIT_CONFIG", env.ConfigPath)
	return env
}

// isolatePath makes BinDir the only directory on PATH.
func (e *testEnv) isolatePath(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", e.BinDir)
}

// fakeTool writes an executable shell script named name into BinDir.
func (e *testEnv) fakeTool(t *testing.T, name, script string) {
	t.Helper()
	path := filepath.Join(e.BinDir, name)
	writeFile(t, path, "#!/bin/sh\n"+script+"\n")
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

// run invokes the CLI with the real exec runner and filesystem.
func (e *testEnv) run(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), cli.Invocation{
		Args:       args,
		Cwd:        e.WorkDir,
		Stdin:      strings.NewReader(""),
		Stdout:     &stdout,
		Stderr:     &stderr,
		ConfigPath: e.ConfigPath,
		Build:      cli.BuildInfo{Version: "0.1.0", Commit: "test", Date: "today"},
	})
	return result{Code: code, Stdout: stdout.String(), Stderr: stderr.String()}
}

// writeFile creates parent directories and writes content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
