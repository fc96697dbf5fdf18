package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBoundedText_Truncates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(p, []byte(strings.Repeat("a", int(DefaultMaxBytes)+10)), 0o644))

	assert.Len(t, ReadBoundedText(p, 0), int(DefaultMaxBytes))
	assert.Len(t, ReadBoundedText(p, 5), 5)
}

func TestReadBoundedText_DropsInvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bin.txt")
	require.NoError(t, os.WriteFile(p, []byte("\xff\xfeAKIA\xc3"), 0o644))
	assert.Equal(t, "AKIA", ReadBoundedText(p, 100))

	// "é" is two bytes; a cap splitting it drops the partial rune
	require.NoError(t, os.WriteFile(p, []byte("abé"), 0o644))
	assert.Equal(t, "ab", ReadBoundedText(p, 3))
}

func TestReadBoundedText_Unreadable(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", ReadBoundedText(filepath.Join(dir, "missing.txt"), 10))
	assert.Equal(t, "", ReadBoundedText(dir, 10))
}
