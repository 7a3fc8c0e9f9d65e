//go:build !cgo

package main

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func init() {
	RegisterMethod(Zstd, func(input io.Reader) io.ReadCloser {
		rd, err := zstd.NewReader(input)
		if err != nil {
			return io.NopCloser(errReader{err: err})
		}
		return rd.IOReadCloser()
	})
}
