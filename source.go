package main

import (
	"bytes"
	"io"
	"os"
)

// ByteSource is a randomly-accessible view of the raw archive bytes.
// Entry readers are derived from absolute offsets into it.
type ByteSource interface {
	io.ReaderAt
	Size() int64
	Close() error
}

type FileSource struct {
	fp   *os.File
	size int64
}

func OpenFileSource(name string) (*FileSource, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	st, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	return &FileSource{fp: fp, size: st.Size()}, nil
}

func (f *FileSource) ReadAt(p []byte, off int64) (int, error) {
	return f.fp.ReadAt(p, off)
}

func (f *FileSource) Size() int64 {
	return f.size
}

func (f *FileSource) Close() error {
	return f.fp.Close()
}

type MemSource struct {
	buf *bytes.Reader
}

func NewMemSource(data []byte) *MemSource {
	return &MemSource{buf: bytes.NewReader(data)}
}

func (m *MemSource) ReadAt(p []byte, off int64) (int, error) {
	return m.buf.ReadAt(p, off)
}

func (m *MemSource) Size() int64 {
	return m.buf.Size()
}

func (m *MemSource) Close() error {
	return nil
}
