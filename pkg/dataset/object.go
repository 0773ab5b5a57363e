package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Object is an opened dataset file. Parquet needs random access, so every
// source, local or remote, ends up as a seekable file.
type Object interface {
	io.ReadCloser
	io.ReaderAt
	Size() (int64, error)
}

// fileObject wraps an os.File and optionally deletes it on close.
type fileObject struct {
	file   *os.File
	path   string
	remove bool
}

func openLocal(p string) (*fileObject, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, p, err)
	}
	return &fileObject{file: f, path: p}, nil
}

// newTempObject takes ownership of a temp file that is removed on Close.
func newTempObject(f *os.File) *fileObject {
	return &fileObject{file: f, path: f.Name(), remove: true}
}

func (o *fileObject) Read(p []byte) (n int, err error) {
	n, err = o.file.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("read %s: %w", o.path, err)
	}
	return n, nil
}

// ReadAt implements io.ReaderAt for Parquet.
func (o *fileObject) ReadAt(p []byte, off int64) (n int, err error) {
	n, err = o.file.ReadAt(p, off)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("read %s at offset %d: %w", o.path, off, err)
	}
	return n, nil
}

// Size returns the file size for Parquet.
func (o *fileObject) Size() (int64, error) {
	info, err := o.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", o.path, err)
	}
	return info.Size(), nil
}

func (o *fileObject) Close() error {
	err := o.file.Close()
	if o.remove {
		os.Remove(o.path)
	}
	if err != nil {
		return fmt.Errorf("close %s: %w", o.path, err)
	}
	return nil
}
