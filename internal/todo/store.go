package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/fs"
)

// Store owns the open document handle for one command invocation.
//
// The handle opened by [Open] is used for both [Store.Load] and the
// following [Store.Save], so the path is resolved exactly once:
//
//	store, err := todo.Open(fsys, path)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	list, err := store.Load()
//	// ... mutate list ...
//	err = store.Save(list)
type Store struct {
	path string
	file fs.File
}

// Open opens the document at path for reading and writing.
//
// A missing document returns an error wrapping [ErrDocumentMissing]; any
// other failure wraps [ErrStorage].
func Open(fsys fs.FS, path string) (*Store, error) {
	file, err := fsys.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentMissing, path)
		}

		return nil, storageError("open "+path, err)
	}

	return &Store{path: path, file: file}, nil
}

// Path returns the document path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole document from the beginning.
//
// Blank lines are skipped and do not consume an ordinal. The first malformed
// line aborts the load with a *[FormatError].
func (s *Store) Load() (*List, error) {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return nil, storageError("seek "+s.path, err)
	}

	return Decode(s.file)
}

// Save rewrites the document from the beginning with every record of list
// in order, then truncates the file at the end of the new content.
func (s *Store) Save(list *List) error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return storageError("seek "+s.path, err)
	}

	written, err := Encode(s.file, list)
	if err != nil {
		return storageError("write "+s.path, err)
	}

	if err := s.file.Truncate(written); err != nil {
		return storageError("truncate "+s.path, err)
	}

	if err := s.file.Sync(); err != nil {
		return storageError("sync "+s.path, err)
	}

	return nil
}

// Close releases the document handle. Calling Close more than once is safe.
func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if err != nil {
		return storageError("close "+s.path, err)
	}

	return nil
}

// Decode parses a complete document. Lines may be of any length.
//
// Read failures wrap [ErrStorage]. Malformed lines return a *[FormatError]
// carrying the 1-based physical line number.
func Decode(r io.Reader) (*List, error) {
	reader := bufio.NewReader(r)
	list := &List{}

	var line Buffer[byte]

	for lineNo := 1; ; lineNo++ {
		more, err := readLine(reader, &line)
		if err != nil {
			return nil, err
		}

		if !more {
			return list, nil
		}

		record, ok, err := ParseLine(string(line.Slice()))
		if err != nil {
			var formatErr *FormatError
			if errors.As(err, &formatErr) {
				formatErr.Line = lineNo
			}

			return nil, err
		}

		if !ok {
			continue
		}

		if _, err := list.Append(record); err != nil {
			return nil, err
		}
	}
}

// readLine reads one line into line, including its terminator if present.
// Returns false once the input is exhausted.
func readLine(reader *bufio.Reader, line *Buffer[byte]) (bool, error) {
	line.Reset()

	for {
		chunk, readErr := reader.ReadSlice('\n')

		if err := line.Append(chunk...); err != nil {
			return false, err
		}

		switch {
		case readErr == nil:
			return true, nil
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			return line.Len() > 0, nil
		default:
			return false, storageError("read", readErr)
		}
	}
}

// Encode writes every record of list as document lines and returns the
// number of bytes written.
func Encode(w io.Writer, list *List) (int64, error) {
	writer := bufio.NewWriter(w)

	var (
		scratch []byte
		written int64
	)

	for i := range list.Len() {
		scratch = AppendLine(scratch[:0], list.At(i))

		n, err := writer.Write(scratch)
		written += int64(n)

		if err != nil {
			return written, err
		}
	}

	if err := writer.Flush(); err != nil {
		return written, err
	}

	return written, nil
}
