//go:build cgo

package main

import (
	"io"

	"github.com/DataDog/zstd"
)

func init() {
	RegisterMethod(Zstd, func(input io.Reader) io.ReadCloser {
		return zstd.NewReader(input)
	})
}
