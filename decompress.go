package main

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
)

// methods served by registered codecs, beyond what archive/zip handles
const (
	Zstd   uint16 = 93
	Brotli uint16 = 121
)

var methodNames = map[uint16]string{
	zip.Store:   "store",
	zip.Deflate: "deflate",
	9:           "deflate64",
	12:          "bzip2",
	14:          "lzma",
	Zstd:        "zstd",
	95:          "xz",
	98:          "ppmd",
	Brotli:      "brotli",
}

func MethodName(method uint16) string {
	if name, ok := methodNames[method]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", method)
}

var decompressors = map[uint16]zip.Decompressor{
	zip.Store:   func(input io.Reader) io.ReadCloser { return io.NopCloser(input) },
	zip.Deflate: flate.NewReader,
}

// RegisterMethod adds a decompressor for the offset-indexed read path.
// Codec files call this from init.
func RegisterMethod(method uint16, dec zip.Decompressor) {
	decompressors[method] = dec
}

func decompressor(method uint16) zip.Decompressor {
	return decompressors[method]
}

// RegisterExtraMethods makes zip.File.Open work on this reader for the
// non-standard methods too.
func RegisterExtraMethods(zr *zip.Reader) {
	for method, dec := range decompressors {
		switch method {
		case zip.Store, zip.Deflate:
		default:
			zr.RegisterDecompressor(method, dec)
		}
	}
}

type errReader struct {
	err error
}

func (e errReader) Read([]byte) (int, error) {
	return 0, e.err
}
