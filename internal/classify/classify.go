// Package classify decides, from a repository-relative path alone, whether a
// candidate file is banned outright, should have its content scanned, or is
// ignored. No file I/O happens here.
package classify

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/redactyl/secretscan/internal/types"
)

// Default policy sets. Extensions are lower-case and include the dot.
var (
	DefaultReservedDirs = []string{"secrets"}

	DefaultBannedExtensions = []string{
		".jks", ".keystore", ".p12", ".pfx", ".pem", ".key", ".der",
	}

	DefaultScanExtensions = []string{
		".gd", ".cs", ".py", ".sh", ".yml", ".yaml", ".json", ".cfg", ".ini",
		".xml", ".tscn", ".tres", ".gradle", ".properties", ".txt", ".env",
	}
)

// Policy holds the lookup sets used by Classify.
type Policy struct {
	reserved map[string]bool
	banned   map[string]bool
	scan     map[string]bool
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	return NewPolicy(nil, nil, nil)
}

// NewPolicy builds a policy from the defaults plus the given extras. Extras
// are normalised to lower case; extensions gain a leading dot if missing.
func NewPolicy(extraReserved, extraBanned, extraScan []string) Policy {
	p := Policy{
		reserved: map[string]bool{},
		banned:   map[string]bool{},
		scan:     map[string]bool{},
	}
	for _, d := range append(append([]string{}, DefaultReservedDirs...), extraReserved...) {
		d = strings.Trim(strings.ToLower(strings.TrimSpace(d)), "/")
		if d != "" {
			p.reserved[d] = true
		}
	}
	addExts(p.banned, DefaultBannedExtensions, extraBanned)
	addExts(p.scan, DefaultScanExtensions, extraScan)
	return p
}

func addExts(set map[string]bool, lists ...[]string) {
	for _, l := range lists {
		for _, e := range l {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			set[e] = true
		}
	}
}

// Result is a classification plus the detail needed to report it.
type Result struct {
	Kind types.Kind
	// Dir is the reserved directory name (lower case) for ForbiddenDirectory.
	Dir string
	// Ext is the extension as written in the path.
	Ext string
}

// Classify applies, in order: reserved first segment, banned extension,
// scannable extension. Anything else is Ignored.
func (p Policy) Classify(rel string) Result {
	rel = filepath.ToSlash(rel)
	first := rel
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		first = rel[:i]
	}
	if d := strings.ToLower(first); p.reserved[d] {
		return Result{Kind: types.ForbiddenDirectory, Dir: d}
	}
	ext := path.Ext(rel)
	lower := strings.ToLower(ext)
	if p.banned[lower] {
		return Result{Kind: types.ForbiddenExtension, Ext: ext}
	}
	if p.scan[lower] {
		return Result{Kind: types.ScannableText, Ext: ext}
	}
	return Result{Kind: types.Ignored, Ext: ext}
}

// Classify uses the default policy.
func Classify(rel string) Result {
	return defaultPolicy.Classify(rel)
}

var defaultPolicy = DefaultPolicy()
