package engine

import (
	"io"
	"os"
	"strings"
)

// ReadBoundedText returns at most maxBytes of the file at path as text.
// Unreadable files yield "". Invalid UTF-8 sequences, including a rune cut
// at the cap, are dropped.
func ReadBoundedText(path string, maxBytes int64) string {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(b), "")
}
