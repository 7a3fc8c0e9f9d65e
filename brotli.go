package main

import (
	"io"

	"github.com/andybalholm/brotli"
)

func init() {
	RegisterMethod(Brotli, func(input io.Reader) io.ReadCloser {
		return io.NopCloser(brotli.NewReader(input))
	})
}
