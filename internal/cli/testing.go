package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory and an isolated
// config home.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{"XDG_CONFIG_HOME": t.TempDir()},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "kpd" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput(nil, args...)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be nil, a string, or an io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var inReader io.Reader

	switch v := stdin.(type) {
	case nil:
	case string:
		inReader = strings.NewReader(v)
	case io.Reader:
		inReader = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"kpd", "--cwd", r.Dir, "--color", "never"}, args...)
	code := Run(inReader, &outBuf, &errBuf, fullArgs, r.Env, nil)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return stdout
}

// MustFail executes the CLI and fails the test unless it exits with
// wantCode. Returns trimmed stderr.
func (r *CLI) MustFail(wantCode int, args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != wantCode {
		r.t.Fatalf("command %v exited with %d, want %d\nstdout: %s\nstderr: %s", args, code, wantCode, stdout, stderr)
	}

	return strings.TrimSpace(stderr)
}

// DocumentPath returns the path of the task document in the temp directory.
func (r *CLI) DocumentPath() string {
	return filepath.Join(r.Dir, "TODO.md")
}

// ReadDocument reads and returns the task document.
func (r *CLI) ReadDocument() string {
	r.t.Helper()

	content, err := os.ReadFile(r.DocumentPath())
	if err != nil {
		r.t.Fatalf("failed to read document: %v", err)
	}

	return string(content)
}

// WriteDocument writes content to the task document.
func (r *CLI) WriteDocument(content string) {
	r.t.Helper()

	err := os.WriteFile(r.DocumentPath(), []byte(content), 0o644)
	if err != nil {
		r.t.Fatalf("failed to write document: %v", err)
	}
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
