package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// absent optional values render as a fixed sentinel glyph
const absentMark = "∅"

func optionalID(v uint64, ok bool) string {
	if !ok {
		return absentMark
	}
	return fmt.Sprintf("%d", v)
}

func humanSize(size uint64) string {
	return humanize.IBytes(size)
}

// host system tags from APPNOTE's "version made by" upper byte
var hostNames = map[uint8]string{
	0:  "msdos",
	1:  "amiga",
	2:  "openvms",
	3:  "unix",
	4:  "vm/cms",
	5:  "atarist",
	6:  "os/2",
	7:  "macintosh",
	8:  "zsystem",
	9:  "cp/m",
	10: "ntfs",
	11: "mvs",
	12: "vse",
	13: "acorn",
	14: "vfat",
	15: "altmvs",
	16: "beos",
	17: "tandem",
	18: "os/400",
	19: "osx",
}

// versionTag renders a creator/reader version word as host/major.minor.
func versionTag(v uint16) string {
	host, ok := hostNames[uint8(v>>8)]
	if !ok {
		host = fmt.Sprintf("host%d", v>>8)
	}
	return fmt.Sprintf("%s/%d.%d", host, (v&0xff)/10, (v&0xff)%10)
}
