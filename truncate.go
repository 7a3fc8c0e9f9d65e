package main

import (
	"strings"
	"unicode/utf8"
)

// TruncatePath bounds a slash-separated path to limit display characters.
// Leading directory components are elided to their first rune, front to
// back, until the joined path fits; the final segment is kept whole as
// long as possible and is never elided. When even full elision cannot
// satisfy the limit, the joined path is hard-truncated and an ellipsis
// appended. Lengths are runes, not bytes.
func TruncatePath(name string, limit int) string {
	var kept []string
	rest := strings.Split(name, "/")
	for {
		length := len(kept) + len(rest) - 1
		for _, token := range kept {
			length += utf8.RuneCountInString(token)
		}
		for _, token := range rest {
			length += utf8.RuneCountInString(token)
		}
		if length < limit {
			return strings.Join(append(kept, rest...), "/")
		}
		if len(rest) <= 1 {
			joined := strings.Join(append(kept, rest...), "/")
			runes := []rune(joined)
			return string(runes[:limit-3]) + "..."
		}
		token := rest[0]
		rest = rest[1:]
		if _, size := utf8.DecodeRuneInString(token); size < len(token) {
			token = token[:size]
		}
		kept = append(kept, token)
	}
}
