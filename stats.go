package main

import "sort"

// ArchiveStats is the result of one forward sweep over an archive's
// entries. Size totals and the method set accumulate over file entries
// only; compressed may exceed uncompressed for degenerate archives.
type ArchiveStats struct {
	creatorVersions map[string]struct{}
	readerVersions  map[string]struct{}
	methods         map[uint16]struct{}

	CompressedTotal   uint64
	UncompressedTotal uint64
	NumFiles          int
	NumDirs           int
	NumSymlinks       int
}

func NewArchiveStats() *ArchiveStats {
	return &ArchiveStats{
		creatorVersions: map[string]struct{}{},
		readerVersions:  map[string]struct{}{},
		methods:         map[uint16]struct{}{},
	}
}

// Add records one entry.
func (s *ArchiveStats) Add(entry Entry) {
	s.creatorVersions[entry.CreatorVersion()] = struct{}{}
	s.readerVersions[entry.ReaderVersion()] = struct{}{}
	switch entry.Kind() {
	case KindDir:
		s.NumDirs++
	case KindSymlink:
		s.NumSymlinks++
	default:
		s.NumFiles++
		s.methods[entry.Method()] = struct{}{}
		s.CompressedTotal += entry.CompressedSize()
		s.UncompressedTotal += entry.UncompressedSize()
	}
}

func Aggregate(entries []Entry) *ArchiveStats {
	stats := NewArchiveStats()
	for _, entry := range entries {
		stats.Add(entry)
	}
	return stats
}

func (s *ArchiveStats) CreatorVersions() []string {
	return sortedKeys(s.creatorVersions)
}

func (s *ArchiveStats) ReaderVersions() []string {
	return sortedKeys(s.readerVersions)
}

func (s *ArchiveStats) Methods() []string {
	res := make([]string, 0, len(s.methods))
	for method := range s.methods {
		res = append(res, MethodName(method))
	}
	sort.Strings(res)
	return res
}

// Ratio reports the compressed/uncompressed percentage. ok is false for
// archives with no uncompressed payload, where the ratio is undefined.
func (s *ArchiveStats) Ratio() (ratio float64, ok bool) {
	if s.UncompressedTotal == 0 {
		return 0, false
	}
	return float64(s.CompressedTotal) / float64(s.UncompressedTotal) * 100.0, true
}

func sortedKeys(set map[string]struct{}) []string {
	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
