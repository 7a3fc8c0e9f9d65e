package main

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gogits/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
)

func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	}
	return "file"
}

// Archive is a read-only view over a parsed ZIP container. It lives for
// one command invocation; entries are views backed by it.
type Archive struct {
	zr       *zip.Reader
	src      ByteSource
	encoding string
}

func OpenArchive(name string) (*Archive, error) {
	src, err := OpenFileSource(name)
	if err != nil {
		slog.Error("open", "name", name, "error", err)
		return nil, err
	}
	ar, err := NewArchive(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return ar, nil
}

func NewArchive(src ByteSource) (*Archive, error) {
	zr, err := zip.NewReader(src, src.Size())
	if err != nil {
		slog.Error("zip reader", "error", err)
		return nil, err
	}
	RegisterExtraMethods(zr)
	ar := &Archive{zr: zr, src: src}
	ar.encoding = ar.normalizeNames()
	return ar, nil
}

func (a *Archive) Comment() string {
	return a.zr.Comment
}

func (a *Archive) Encoding() string {
	return a.encoding
}

// Entries returns the entries in central directory order.
func (a *Archive) Entries() []Entry {
	res := make([]Entry, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		res = append(res, Entry{zf: f})
	}
	return res
}

func (a *Archive) Close() error {
	return a.src.Close()
}

// sectionAt yields a reader over the raw archive bytes starting at offset.
// It is the default resolver for Entry.OpenAt.
func (a *Archive) sectionAt(offset int64) io.Reader {
	return io.NewSectionReader(a.src, offset, a.src.Size()-offset)
}

const nameSampleSize = 4096

// normalizeNames detects the filename encoding and rewrites non-UTF-8 names
// to UTF-8. Historically zip names are CP437, except where they are really
// Shift_JIS; names flagged non-UTF-8 are sampled into one buffer and run
// through chardet, falling back to CP437 below the confidence bar.
func (a *Archive) normalizeNames() string {
	buf := new(bytes.Buffer)
	buf.Grow(nameSampleSize)
	for _, f := range a.zr.File {
		if f.NonUTF8 && !utf8.ValidString(f.Name) {
			buf.WriteString(f.Name)
			buf.WriteByte(' ')
			if buf.Len() > nameSampleSize {
				break
			}
		}
	}
	if buf.Len() == 0 {
		return "utf-8"
	}
	label := "cp437"
	var enc encoding.Encoding = charmap.CodePage437
	res, err := chardet.NewTextDetector().DetectBest(buf.Bytes())
	if err == nil && res.Confidence > 70 && res.Charset == "Shift_JIS" {
		label = "shift_jis"
		enc = japanese.ShiftJIS
	}
	slog.Debug("name encoding", "label", label)
	decoder := enc.NewDecoder()
	for _, f := range a.zr.File {
		if f.NonUTF8 {
			if decoded, err := decoder.String(f.Name); err == nil {
				f.Name = decoded
			}
		}
	}
	return label
}

// Entry is one central directory record. Names are archive-relative and
// untrusted; never use them as filesystem paths without sanitizing.
type Entry struct {
	zf *zip.File
}

func (e Entry) Name() string {
	return e.zf.Name
}

func (e Entry) Mode() fs.FileMode {
	return e.zf.Mode()
}

func (e Entry) Modified() time.Time {
	return e.zf.Modified
}

func (e Entry) UncompressedSize() uint64 {
	return e.zf.UncompressedSize64
}

func (e Entry) CompressedSize() uint64 {
	return e.zf.CompressedSize64
}

func (e Entry) Method() uint16 {
	return e.zf.Method
}

func (e Entry) Kind() EntryKind {
	mode := e.zf.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir() || strings.HasSuffix(e.zf.Name, "/"):
		return KindDir
	}
	return KindFile
}

func (e Entry) CreatorVersion() string {
	return versionTag(e.zf.CreatorVersion)
}

func (e Entry) ReaderVersion() string {
	return versionTag(e.zf.ReaderVersion)
}

// Info-ZIP "new unix" extra field
const unixExtraID = 0x7875

func (e Entry) UID() (uint64, bool) {
	uid, _, ok := e.unixIDs()
	return uid, ok
}

func (e Entry) GID() (uint64, bool) {
	_, gid, ok := e.unixIDs()
	return gid, ok
}

// unixIDs walks the extra field for the 0x7875 record: version(1),
// uid-size(1), uid(LE), gid-size(1), gid(LE). Only version 1 is known.
func (e Entry) unixIDs() (uid, gid uint64, ok bool) {
	extra := e.zf.Extra
	for len(extra) >= 4 {
		id := binary.LittleEndian.Uint16(extra)
		size := int(binary.LittleEndian.Uint16(extra[2:]))
		if len(extra) < 4+size {
			return 0, 0, false
		}
		body := extra[4 : 4+size]
		extra = extra[4+size:]
		if id != unixExtraID || len(body) < 1 || body[0] != 1 {
			continue
		}
		body = body[1:]
		var vals [2]uint64
		for i := range vals {
			if len(body) < 1 {
				return 0, 0, false
			}
			n := int(body[0])
			body = body[1:]
			if n > 8 || len(body) < n {
				return 0, 0, false
			}
			for j := n - 1; j >= 0; j-- {
				vals[i] = vals[i]<<8 | uint64(body[j])
			}
			body = body[n:]
		}
		return vals[0], vals[1], true
	}
	return 0, 0, false
}

// Open decodes the entry through archive/zip's own plumbing.
func (e Entry) Open() (io.ReadCloser, error) {
	return e.zf.Open()
}

// OpenAt reads the entry's raw byte range through resolve and pipes it
// through the decompressor for its method. resolve gets the absolute
// offset of the entry data in the underlying byte source.
func (e Entry) OpenAt(resolve func(offset int64) io.Reader) (io.ReadCloser, error) {
	offset, err := e.zf.DataOffset()
	if err != nil {
		slog.Error("dataoffset", "name", e.zf.Name, "error", err)
		return nil, err
	}
	dec := decompressor(e.zf.Method)
	if dec == nil {
		return nil, fmt.Errorf("unsupported method %s", MethodName(e.zf.Method))
	}
	raw := io.LimitReader(resolve(offset), int64(e.zf.CompressedSize64))
	return dec(raw), nil
}

// ReadAll slurps the whole entry via the offset-indexed path.
func (e Entry) ReadAll(resolve func(offset int64) io.Reader) ([]byte, error) {
	rd, err := e.OpenAt(resolve)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	return io.ReadAll(rd)
}
