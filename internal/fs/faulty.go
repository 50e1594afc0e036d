package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"sync"
	"syscall"
)

// Op names an operation [Faulty] can be told to fail.
type Op uint8

// Operations that can be failed. File-level operations apply to every
// handle opened through the [Faulty] after the fault is armed.
const (
	OpOpen Op = iota + 1
	OpStat
	OpRead
	OpWrite
	OpSeek
	OpTruncate
	OpSync
	OpClose
)

var opNames = map[Op]string{
	OpOpen:     "open",
	OpStat:     "stat",
	OpRead:     "read",
	OpWrite:    "write",
	OpSeek:     "seek",
	OpTruncate: "truncate",
	OpSync:     "sync",
	OpClose:    "close",
}

// InjectedError marks an error as intentionally injected by [Faulty].
//
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Err error
}

// Error returns the underlying error's message.
func (e *InjectedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected by [Faulty].
// Returns false if err is nil.
func IsInjected(err error) bool {
	if err == nil {
		return false
	}

	var injected *InjectedError

	return errors.As(err, &injected)
}

// Faulty wraps an [FS] and fails armed operations deterministically.
//
// Unlike a randomized chaos filesystem, Faulty fails exactly the operations
// a test arms with [Faulty.Fail], every time, until [Faulty.Clear] is called.
// Unarmed operations pass through to the underlying FS.
//
// Faulty is safe for concurrent use.
type Faulty struct {
	underlying FS

	mu     sync.Mutex
	faults map[Op]syscall.Errno
}

// NewFaulty wraps underlying. Panics if underlying is nil.
func NewFaulty(underlying FS) *Faulty {
	if underlying == nil {
		panic("underlying fs is nil")
	}

	return &Faulty{
		underlying: underlying,
		faults:     make(map[Op]syscall.Errno),
	}
}

// Fail arms op to fail with errno.
func (f *Faulty) Fail(op Op, errno syscall.Errno) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.faults[op] = errno
}

// Clear disarms op.
func (f *Faulty) Clear(op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.faults, op)
}

// OpenFile opens through the underlying FS unless [OpOpen] is armed.
func (f *Faulty) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	if err := f.check(OpOpen, path); err != nil {
		return nil, err
	}

	file, err := f.underlying.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	return &faultyFile{File: file, fs: f, path: path}, nil
}

// Stat stats through the underlying FS unless [OpStat] is armed.
func (f *Faulty) Stat(path string) (os.FileInfo, error) {
	if err := f.check(OpStat, path); err != nil {
		return nil, err
	}

	return f.underlying.Stat(path)
}

func (f *Faulty) check(op Op, path string) error {
	f.mu.Lock()
	errno, armed := f.faults[op]
	f.mu.Unlock()

	if !armed {
		return nil
	}

	return &InjectedError{Err: &iofs.PathError{Op: opNames[op], Path: path, Err: errno}}
}

type faultyFile struct {
	File

	fs   *Faulty
	path string
}

func (ff *faultyFile) Read(buf []byte) (int, error) {
	if err := ff.fs.check(OpRead, ff.path); err != nil {
		return 0, err
	}

	return ff.File.Read(buf)
}

func (ff *faultyFile) Write(data []byte) (int, error) {
	if err := ff.fs.check(OpWrite, ff.path); err != nil {
		return 0, err
	}

	return ff.File.Write(data)
}

func (ff *faultyFile) Seek(offset int64, whence int) (int64, error) {
	if err := ff.fs.check(OpSeek, ff.path); err != nil {
		return 0, err
	}

	return ff.File.Seek(offset, whence)
}

func (ff *faultyFile) Truncate(size int64) error {
	if err := ff.fs.check(OpTruncate, ff.path); err != nil {
		return err
	}

	return ff.File.Truncate(size)
}

func (ff *faultyFile) Sync() error {
	if err := ff.fs.check(OpSync, ff.path); err != nil {
		return err
	}

	return ff.File.Sync()
}

// Close always closes the underlying descriptor, even when [OpClose] is armed.
func (ff *faultyFile) Close() error {
	closeErr := ff.File.Close()

	if err := ff.fs.check(OpClose, ff.path); err != nil {
		return err
	}

	return closeErr
}

// Compile-time interface checks.
var (
	_ FS   = (*Faulty)(nil)
	_ File = (*faultyFile)(nil)
)
