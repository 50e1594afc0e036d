package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func Test_RealFS_Stat_Returns_ErrNotExist_When_Path_Does_Not_Exist(t *testing.T) {
	t.Parallel()

	fsys := NewReal()

	_, err := fsys.Stat(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	if got, want := err, os.ErrNotExist; !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}
}

func Test_Faulty_Stat_Fails_When_Armed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fsys := NewFaulty(NewReal())
	fsys.Fail(OpStat, syscall.EACCES)

	_, err := fsys.Stat(dir)
	if !errors.Is(err, syscall.EACCES) {
		t.Fatalf("err=%v, want EACCES", err)
	}

	fsys.Clear(OpStat)

	info, err := fsys.Stat(dir)
	if err != nil {
		t.Fatalf("stat after clear: %v", err)
	}

	if got, want := info.IsDir(), true; got != want {
		t.Fatalf("IsDir=%v, want=%v", got, want)
	}
}

func Test_RealFS_Truncate_Keeps_Offset_When_Shrinking_File(t *testing.T) {
	t.Parallel()

	fsys := NewReal()
	path := filepath.Join(t.TempDir(), "doc.md")

	if err := os.WriteFile(path, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	file, err := fsys.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte("ab")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := file.Truncate(2); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got, want := string(data), "ab"; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}
}

func Test_Faulty_Fails_Armed_Operation_Until_Cleared(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	fsys := NewFaulty(NewReal())
	fsys.Fail(OpOpen, syscall.EACCES)

	_, err := fsys.OpenFile(path, os.O_RDWR, 0)
	if !IsInjected(err) {
		t.Fatalf("err=%v, want injected error", err)
	}

	if !errors.Is(err, syscall.EACCES) {
		t.Fatalf("err=%v, want EACCES", err)
	}

	fsys.Clear(OpOpen)

	file, err := fsys.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open after clear: %v", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got, want := string(data), "hello"; got != want {
		t.Fatalf("content=%q, want=%q", got, want)
	}
}

func Test_Faulty_Fails_File_Operations_On_Open_Handles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	fsys := NewFaulty(NewReal())

	file, err := fsys.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()

	fsys.Fail(OpTruncate, syscall.EIO)
	fsys.Fail(OpWrite, syscall.ENOSPC)

	if err := file.Truncate(0); !errors.Is(err, syscall.EIO) {
		t.Fatalf("truncate err=%v, want EIO", err)
	}

	if _, err := file.Write([]byte("x")); !errors.Is(err, syscall.ENOSPC) {
		t.Fatalf("write err=%v, want ENOSPC", err)
	}

	if IsInjected(nil) {
		t.Fatal("IsInjected(nil) = true")
	}
}
