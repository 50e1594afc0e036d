package todo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/fs"
)

const filePerms = 0o644

// Locate finds the document named name in startDir or the nearest parent
// directory that holds one. Returns an error wrapping [ErrDocumentMissing]
// if no directory up to the filesystem root has it.
func Locate(fsys fs.FS, startDir, name string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", storageError("resolve "+startDir, err)
	}

	for {
		candidate := filepath.Join(dir, name)

		info, statErr := fsys.Stat(candidate)
		if statErr == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		if statErr != nil && !errors.Is(statErr, os.ErrNotExist) && !errors.Is(statErr, os.ErrPermission) {
			return "", storageError("stat "+candidate, statErr)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrDocumentMissing, name, startDir)
		}

		dir = parent
	}
}

// Init creates an empty document named name in dir.
//
// Returns the document path and whether it was created. An existing regular
// file is left untouched. dir must exist and be a directory.
func Init(fsys fs.FS, dir, name string) (string, bool, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("%w: directory %s", ErrDocumentMissing, dir)
		}

		return "", false, storageError("stat "+dir, err)
	}

	if !info.IsDir() {
		return "", false, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	path := filepath.Join(dir, name)

	info, err = fsys.Stat(path)
	switch {
	case err == nil && info.Mode().IsRegular():
		return path, false, nil
	case err == nil:
		return "", false, fmt.Errorf("%s %w", path, ErrNotRegularFile)
	case !errors.Is(err, os.ErrNotExist):
		return "", false, storageError("stat "+path, err)
	}

	if err := atomic.WriteFile(path, strings.NewReader("")); err != nil {
		return "", false, storageError("create "+path, err)
	}

	// atomic.WriteFile doesn't set permissions for new files.
	if err := os.Chmod(path, filePerms); err != nil {
		return "", false, storageError("chmod "+path, err)
	}

	return path, true, nil
}
