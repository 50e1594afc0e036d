package cli

import (
	"errors"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/vcs"
)

// Exit codes, grouped by failure category.
const (
	exitOK              = 0
	exitFailure         = 1
	exitUsage           = 10
	exitFormat          = 11
	exitStorage         = 20
	exitDocumentMissing = 31
	exitNotRegularFile  = 32
	exitNotDirectory    = 33
	exitAllocation      = 40
	exitVCS             = 53
	exitInterrupted     = 130
)

var exitCodes = []struct {
	err  error
	code int
}{
	{errUsage, exitUsage},
	{todo.ErrSelectorSyntax, exitUsage},
	{todo.ErrSelectorRange, exitUsage},
	{todo.ErrInvalidText, exitUsage},
	{vcs.ErrEmptyMessage, exitUsage},
	{todo.ErrFormat, exitFormat},
	{todo.ErrDocumentMissing, exitDocumentMissing},
	{todo.ErrNotRegularFile, exitNotRegularFile},
	{todo.ErrNotDirectory, exitNotDirectory},
	{todo.ErrStorage, exitStorage},
	{todo.ErrAllocation, exitAllocation},
	{vcs.ErrGit, exitVCS},
}

// exitCode maps err to the exit code of its category.
func exitCode(err error) int {
	for _, entry := range exitCodes {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}

	return exitFailure
}
