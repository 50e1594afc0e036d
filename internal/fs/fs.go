// Package fs provides the filesystem seam used by the document store.
//
// The main types are:
//   - [FS]: interface for filesystem operations
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using [os] package
//   - [Faulty]: testing implementation that fails selected operations
//
// Example usage:
//
//	fsys := fs.NewReal()
//	f, err := fsys.OpenFile("TODO.md", os.O_RDWR, 0)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
package fs

import (
	"io"
	"os"
)

// File represents an OS-backed open file descriptor.
//
// This interface is satisfied by [os.File] and can be used with all
// standard library functions that accept [io.Reader], [io.Writer],
// [io.Seeker], or [io.Closer].
//
// The document store keeps one File open between a read and the following
// rewrite, so File carries [File.Truncate] in addition to the usual
// read/write/seek methods.
type File interface {
	// Embedded interfaces from [io] package.
	// These provide Read, Write, Close, and Seek methods.
	io.ReadWriteCloser
	io.Seeker

	// Fd returns the file descriptor. See [os.File.Fd].
	Fd() uintptr

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)

	// Sync commits the file's contents to disk. See [os.File.Sync].
	Sync() error

	// Truncate changes the size of the file. See [os.File.Truncate].
	// It does not change the I/O offset.
	Truncate(size int64) error
}

// FS defines the filesystem operations the task store needs.
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing with fault injection.
//
// Paths use OS semantics (like the os package and path/filepath), not the
// slash-separated paths used by the standard library io/fs package.
type FS interface {
	// OpenFile opens a file with specified flags and permissions. See [os.OpenFile].
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// Stat returns file info. See [os.Stat].
	// Returns [os.ErrNotExist] if file doesn't exist.
	Stat(path string) (os.FileInfo, error)
}

// Compile-time interface checks.
var _ File = (*os.File)(nil)
