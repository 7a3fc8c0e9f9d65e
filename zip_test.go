package main

import (
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"os"
	"testing"
	"time"
)

type testEntry struct {
	name    string
	body    []byte
	mode    fs.FileMode
	method  uint16
	extra   []byte
	nonUTF8 bool

	// raw entries are written pre-compressed with declared sizes
	raw   bool
	csize uint64
	usize uint64
	crc   uint32
}

var testStamp = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func buildZip(t *testing.T, comment string, entries []testEntry) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	if comment != "" {
		if err := zw.SetComment(comment); err != nil {
			t.Fatal("set comment", err)
		}
	}
	for _, e := range entries {
		hdr := &zip.FileHeader{
			Name:     e.name,
			Method:   e.method,
			Modified: testStamp,
			Extra:    e.extra,
			NonUTF8:  e.nonUTF8,
		}
		if e.mode != 0 {
			hdr.SetMode(e.mode)
		}
		if e.raw {
			hdr.CompressedSize64 = e.csize
			hdr.UncompressedSize64 = e.usize
			hdr.CRC32 = e.crc
			wr, err := zw.CreateRaw(hdr)
			if err != nil {
				t.Fatal("create raw", e.name, err)
			}
			if _, err := wr.Write(e.body); err != nil {
				t.Fatal("write raw", e.name, err)
			}
			continue
		}
		wr, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatal("create header", e.name, err)
		}
		if len(e.body) != 0 {
			if _, err := wr.Write(e.body); err != nil {
				t.Fatal("write body", e.name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal("close writer", err)
	}
	return buf.Bytes()
}

func writeTestZip(t *testing.T, comment string, entries []testEntry) string {
	t.Helper()
	data := buildZip(t, comment, entries)
	fp, err := os.CreateTemp(t.TempDir(), "zip*.zip")
	if err != nil {
		t.Fatal("CreateTemp", err)
	}
	defer fp.Close()
	if _, err := fp.Write(data); err != nil {
		t.Fatal("write zip", err)
	}
	return fp.Name()
}

// Info-ZIP new unix extra field, version 1, 32bit uid/gid
func unixExtra(uid, gid uint32) []byte {
	body := []byte{
		1,
		4, byte(uid), byte(uid >> 8), byte(uid >> 16), byte(uid >> 24),
		4, byte(gid), byte(gid >> 8), byte(gid >> 16), byte(gid >> 24),
	}
	res := []byte{0x75, 0x78, byte(len(body)), 0}
	return append(res, body...)
}

// runCommand runs the real parser in-process and captures stdout.
func runCommand(t *testing.T, args []string) (string, error) {
	t.Helper()
	rd, wr, err := os.Pipe()
	if err != nil {
		t.Fatal("pipe", err)
	}
	orig := os.Stdout
	os.Stdout = wr
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, rd); err != nil {
			t.Error("copy stdout", err)
		}
		done <- buf.String()
	}()
	_, perr := newParser().ParseArgs(args)
	wr.Close()
	os.Stdout = orig
	return <-done, perr
}
