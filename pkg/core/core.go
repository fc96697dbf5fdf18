package core

import (
	"context"

	"github.com/redactyl/secretscan/internal/engine"
	"github.com/redactyl/secretscan/internal/git"
	"github.com/redactyl/secretscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config   = engine.Config
	Result   = engine.Result
	Stats    = engine.Stats
	Offender = types.Offender
	Mode     = types.Mode
	Lister   = git.Lister
)

const (
	ModeStaged  = types.ModeStaged
	ModeTracked = types.ModeTracked
)

// ErrRepositoryNotFound is returned by FindRoot outside a repository.
var ErrRepositoryNotFound = git.ErrRepositoryNotFound

// FindRoot locates the repository enclosing start.
func FindRoot(start string) (string, error) { return git.FindRoot(start) }

// NewLister returns the default file lister for root: the git binary when
// installed, go-git otherwise.
func NewLister(root string) (Lister, error) { return git.NewLister(root, git.BackendAuto) }

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, cfg Config, l Lister) ([]Offender, error) {
	return engine.Scan(ctx, cfg, l)
}

// ScanWithStats is Scan plus per-run counters.
func ScanWithStats(ctx context.Context, cfg Config, l Lister) (Result, error) {
	return engine.ScanWithStats(ctx, cfg, l)
}

// DetectorLabels returns the content detector labels in evaluation order.
func DetectorLabels() []string { return engine.DetectorLabels() }
