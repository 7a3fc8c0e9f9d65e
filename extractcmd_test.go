package main

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/loremipsum.v1"
)

func TestExtractText(t *testing.T) {
	text := loremipsum.New().Paragraph()
	fname := writeTestZip(t, "", []testEntry{
		{name: "lorem.txt", body: []byte(text), method: 8},
	})
	stdout, err := runCommand(t, []string{"extract", fname})
	if err != nil {
		t.Fatal("extract", err)
	}
	if !strings.Contains(stdout, "Extracting lorem.txt") {
		t.Error("extracting line", stdout)
	}
	if !strings.Contains(stdout, fmt.Sprintf("contents = %q", text)) {
		t.Error("text not reproduced", stdout)
	}
}

func TestExtractExactText(t *testing.T) {
	fname := writeTestZip(t, "", []testEntry{
		{name: "hello.txt", body: []byte("Hello, World!\n"), method: 8},
	})
	stdout, err := runCommand(t, []string{"extract", fname})
	if err != nil {
		t.Fatal("extract", err)
	}
	if !strings.Contains(stdout, "contents = \"Hello, World!\\n\"") {
		t.Error("exact text", stdout)
	}
}

func TestExtractBinary(t *testing.T) {
	fname := writeTestZip(t, "", []testEntry{
		{name: "blob.bin", body: []byte{0xff, 0xfe, 0x01}, method: 0},
	})
	stdout, err := runCommand(t, []string{"extract", fname})
	if err != nil {
		t.Fatal("extract", err)
	}
	if !strings.Contains(stdout, "contents = [255 254 1]") {
		t.Error("binary debug form", stdout)
	}
}

func TestExtractSummaryFirst(t *testing.T) {
	fname := writeTestZip(t, "", []testEntry{
		{name: "a.txt", body: []byte("a"), method: 8},
	})
	stdout, err := runCommand(t, []string{"extract", fname})
	if err != nil {
		t.Fatal("extract", err)
	}
	summary := strings.Index(stdout, "Version made by:")
	extracting := strings.Index(stdout, "Extracting")
	if summary == -1 || extracting == -1 || summary > extracting {
		t.Error("summary must precede extraction", stdout)
	}
}

func TestExtractZstdEntry(t *testing.T) {
	payload := []byte("zstandard compressed entry payload")
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal("zstd writer", err)
	}
	compressed := enc.EncodeAll(payload, nil)
	enc.Close()
	fname := writeTestZip(t, "", []testEntry{
		{name: "data.zst", raw: true, method: Zstd, body: compressed,
			csize: uint64(len(compressed)), usize: uint64(len(payload)), crc: crc32.ChecksumIEEE(payload)},
	})
	stdout, err := runCommand(t, []string{"extract", fname})
	if err != nil {
		t.Fatal("extract", err)
	}
	if !strings.Contains(stdout, fmt.Sprintf("contents = %q", payload)) {
		t.Error("zstd contents", stdout)
	}
	if !strings.Contains(stdout, "Methods: [zstd]") {
		t.Error("method set", stdout)
	}
}

func TestExtractBrotliEntry(t *testing.T) {
	payload := []byte("brotli compressed entry payload")
	buf := &bytes.Buffer{}
	bw := brotli.NewWriter(buf)
	if _, err := bw.Write(payload); err != nil {
		t.Fatal("brotli write", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatal("brotli close", err)
	}
	compressed := buf.Bytes()
	fname := writeTestZip(t, "", []testEntry{
		{name: "data.br", raw: true, method: Brotli, body: compressed,
			csize: uint64(len(compressed)), usize: uint64(len(payload)), crc: crc32.ChecksumIEEE(payload)},
	})
	stdout, err := runCommand(t, []string{"extract", fname})
	if err != nil {
		t.Fatal("extract", err)
	}
	if !strings.Contains(stdout, fmt.Sprintf("contents = %q", payload)) {
		t.Error("brotli contents", stdout)
	}
}

func TestExtractExclude(t *testing.T) {
	fname := writeTestZip(t, "", []testEntry{
		{name: "keep.txt", body: []byte("k"), method: 8},
		{name: "skip.log", body: []byte("s"), method: 8},
	})
	stdout, err := runCommand(t, []string{"extract", "-x", "*.log", fname})
	if err != nil {
		t.Fatal("extract -x", err)
	}
	if !strings.Contains(stdout, "Extracting keep.txt") || strings.Contains(stdout, "Extracting skip.log") {
		t.Error("exclude", stdout)
	}
}
