package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/redactyl/secretscan/internal/classify"
	"github.com/redactyl/secretscan/internal/detectors"
	"github.com/redactyl/secretscan/internal/git"
	"github.com/redactyl/secretscan/internal/types"
)

// DefaultMaxBytes caps how much of each file is inspected.
const DefaultMaxBytes int64 = 1 << 20

// Config controls a single scan run.
type Config struct {
	Root     string
	Mode     types.Mode
	MaxBytes int64
	// Policy defaults to classify.DefaultPolicy when nil.
	Policy *classify.Policy
	// Detectors defaults to detectors.All when nil.
	Detectors []detectors.Detector
	// ExcludeGlobs is a comma-separated list of doublestar globs. Matching
	// scannable files are not read. Directory and extension bans still apply.
	ExcludeGlobs string
	Logger       *slog.Logger
}

// Stats counts what happened to each candidate.
type Stats struct {
	Candidates int           `json:"candidates"`
	Scanned    int           `json:"scanned"`
	Ignored    int           `json:"ignored"`
	Missing    int           `json:"missing"`
	Excluded   int           `json:"excluded"`
	Duration   time.Duration `json:"duration_ns"`
}

// Result contains offenders and scan statistics.
type Result struct {
	Offenders []types.Offender
	Stats     Stats
}

// Scan runs a scan and returns only offenders.
func Scan(ctx context.Context, cfg Config, l git.Lister) ([]types.Offender, error) {
	res, err := ScanWithStats(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	return res.Offenders, nil
}

// ScanWithStats enumerates candidates with l and inspects each in order.
// Enumeration errors abort the run; per-file read problems never do.
func ScanWithStats(ctx context.Context, cfg Config, l git.Lister) (Result, error) {
	var result Result
	cfg = withDefaults(cfg)
	log := cfg.Logger
	started := time.Now()

	paths, err := git.List(ctx, l, cfg.Mode)
	if err != nil {
		return result, fmt.Errorf("list %s files: %w", cfg.Mode, err)
	}
	log.Debug("enumerated candidates", "mode", cfg.Mode, "count", len(paths))

	excludes := parseGlobsList(cfg.ExcludeGlobs)
	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Stats.Candidates++

		full := filepath.Join(cfg.Root, filepath.FromSlash(rel))
		if _, err := os.Stat(full); errors.Is(err, fs.ErrNotExist) {
			log.Debug("skipping missing file", "path", rel)
			result.Stats.Missing++
			continue
		}

		c := cfg.Policy.Classify(rel)
		log.Debug("classified", "path", rel, "kind", c.Kind.String())
		switch c.Kind {
		case types.ForbiddenDirectory:
			result.Offenders = append(result.Offenders, types.Offender{Path: rel, Kind: types.ReasonDirectory, Dir: c.Dir})
		case types.ForbiddenExtension:
			result.Offenders = append(result.Offenders, types.Offender{Path: rel, Kind: types.ReasonExtension, Extension: c.Ext})
		case types.ScannableText:
			if matchAnyGlob(rel, excludes) {
				log.Debug("excluded by glob", "path", rel)
				result.Stats.Excluded++
				continue
			}
			result.Stats.Scanned++
			text := ReadBoundedText(full, cfg.MaxBytes)
			if d, ok := detectors.Match(text, cfg.Detectors); ok {
				result.Offenders = append(result.Offenders, types.Offender{
					Path: rel, Kind: types.ReasonPattern, Detector: d.Label, Line: d.Line(text),
				})
			}
		default:
			result.Stats.Ignored++
		}
	}

	result.Stats.Duration = time.Since(started)
	log.Debug("scan finished",
		"offenders", len(result.Offenders),
		"scanned", result.Stats.Scanned,
		"ignored", result.Stats.Ignored,
		"duration", result.Stats.Duration)
	return result, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Mode == "" {
		cfg.Mode = types.ModeStaged
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.Policy == nil {
		p := classify.DefaultPolicy()
		cfg.Policy = &p
	}
	if cfg.Detectors == nil {
		cfg.Detectors = detectors.All()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// DetectorLabels returns the labels of the built-in detectors in order.
func DetectorLabels() []string {
	return detectors.Labels()
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, strings.TrimPrefix(p, "./"))
		}
	}
	return out
}

// matchAnyGlob matches against the full relative path and its base name, so
// "*.json" excludes JSON files at any depth.
func matchAnyGlob(rel string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
