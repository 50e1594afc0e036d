package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrGit is returned when git cannot be run or exits unsuccessfully.
var ErrGit = errors.New("git failed")

// ErrEmptyMessage is returned when a commit is requested without a message.
var ErrEmptyMessage = errors.New("commit message cannot be empty")

// Git stages and commits a single file.
type Git struct {
	// Binary is the git executable, looked up in PATH when not absolute.
	Binary string

	// Logger receives debug records for every invocation. May be nil.
	Logger *log.Logger
}

// Commit stages the document at path and commits it with message.
//
// git runs in the document's directory, so the document must live inside a
// work tree. Only the document is committed; anything else the user staged
// stays staged.
func (g Git) Commit(ctx context.Context, path, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	if err := g.run(ctx, dir, "add", "--", name); err != nil {
		return err
	}

	return g.run(ctx, dir, "commit", "-m", message, "--", name)
}

func (g Git) run(ctx context.Context, dir string, args ...string) error {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}

	fullArgs := append([]string{"-C", dir}, args...)

	if g.Logger != nil {
		g.Logger.Debug("running git", "binary", binary, "args", fullArgs)
	}

	cmd := exec.CommandContext(ctx, binary, fullArgs...)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: git %s exited with %d: %s", ErrGit, args[0], exitErr.ExitCode(), detail)
		}

		return fmt.Errorf("%w: %w", ErrGit, err)
	}

	return nil
}
