package vcs_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/vcs"
)

func Test_DoneMessage_Rewrites_Verbs_To_Past_Tense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{"Fix login bug", "Fixed login bug"},
		{"archive old logs", "archived old logs"},
		{"Apply patch", "Applied patch"},
		{"Build binaries", "Built binaries"},
		{"send invoice", "sent invoice"},
		{"Debug crash", "Debugged crash"},
		{"stop the daemon", "stopped the daemon"},
		{"Add tests", "Added tests"},
		{"verify backups", "verified backups"},
		{"FIX TYPO", "FIXED TYPO"},
		{"Update docs and fix links", "Updated docs and fixed links"},
		{"Write report", "Write reported"},
		{"addresses are wrong", "Closed 'addresses are wrong'"},
		{"readd the cron job", "Closed 'readd the cron job'"},
		{"Water plants", "Closed 'Water plants'"},
		{"", "Closed ''"},
	}

	for _, testCase := range tests {
		t.Run(testCase.text, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, vcs.DoneMessage(testCase.text))
		})
	}
}

func Test_Undo_And_Remove_Messages_Quote_Text(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Reopened 'Fix bug'", vcs.UndoMessage("Fix bug"))
	assert.Equal(t, "Removed 'Fix bug'", vcs.RemoveMessage("Fix bug"))
}

func requireGit(t *testing.T) string {
	t.Helper()

	path, err := exec.LookPath("git")
	if err != nil {
		t.Skip("git not installed")
	}

	return path
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.CommandContext(context.Background(), "git", append([]string{"-C", dir}, args...)...)
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
	)

	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)

	return strings.TrimSpace(string(out))
}

func Test_Git_Commit_Records_Only_The_Document(t *testing.T) {
	t.Parallel()

	binary := requireGit(t)
	dir := t.TempDir()

	gitOutput(t, dir, "init", "-q")
	gitOutput(t, dir, "config", "user.name", "Test")
	gitOutput(t, dir, "config", "user.email", "test@example.com")
	gitOutput(t, dir, "config", "commit.gpgsign", "false")

	doc := filepath.Join(dir, "TODO.md")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(doc, []byte(" - [X] Fix bug\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	gitOutput(t, dir, "add", "other.txt")

	git := vcs.Git{Binary: binary}
	require.NoError(t, git.Commit(context.Background(), doc, "Fixed bug"))

	assert.Equal(t, "Fixed bug", gitOutput(t, dir, "log", "-1", "--format=%s"))
	assert.Equal(t, "TODO.md", gitOutput(t, dir, "show", "--name-only", "--format=", "HEAD"))
	assert.Equal(t, "A  other.txt", gitOutput(t, dir, "status", "--porcelain"))
}

func Test_Git_Commit_Fails_When_Not_A_Repository(t *testing.T) {
	binary := requireGit(t)
	dir := t.TempDir()
	doc := filepath.Join(dir, "TODO.md")
	require.NoError(t, os.WriteFile(doc, nil, 0o644))

	// Keep git from discovering a repository above the temp dir.
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	err := vcs.Git{Binary: binary}.Commit(context.Background(), doc, "msg")
	require.ErrorIs(t, err, vcs.ErrGit)
}

func Test_Git_Commit_Fails_When_Binary_Missing(t *testing.T) {
	t.Parallel()

	err := vcs.Git{Binary: filepath.Join(t.TempDir(), "no-git")}.Commit(context.Background(), "TODO.md", "msg")
	require.ErrorIs(t, err, vcs.ErrGit)
}

func Test_Git_Commit_Rejects_Empty_Message(t *testing.T) {
	t.Parallel()

	err := vcs.Git{}.Commit(context.Background(), "TODO.md", "  ")
	require.ErrorIs(t, err, vcs.ErrEmptyMessage)
}
