package git

import (
	"context"
	"fmt"

	"github.com/redactyl/secretscan/internal/types"
)

// Lister enumerates repository-relative paths. Implementations must fail the
// whole call rather than return a partial listing.
type Lister interface {
	// ListStaged returns paths added, copied, modified or renamed in the
	// index relative to HEAD.
	ListStaged(ctx context.Context) ([]string, error)
	// ListTracked returns every path in the index.
	ListTracked(ctx context.Context) ([]string, error)
}

// Backend names accepted by NewLister.
const (
	BackendAuto  = "auto"
	BackendExec  = "exec"
	BackendGoGit = "gogit"
)

// NewLister returns a Lister for the repository at root. BackendAuto prefers
// the git binary and falls back to go-git when git is not installed.
func NewLister(root, backend string) (Lister, error) {
	switch backend {
	case "", BackendAuto:
		if GitExists() {
			return &ExecLister{Root: root}, nil
		}
		return OpenGoGit(root)
	case BackendExec:
		return &ExecLister{Root: root}, nil
	case BackendGoGit:
		return OpenGoGit(root)
	}
	return nil, fmt.Errorf("unknown git backend %q (want auto, exec or gogit)", backend)
}

// List dispatches on mode.
func List(ctx context.Context, l Lister, mode types.Mode) ([]string, error) {
	switch mode {
	case types.ModeStaged:
		return l.ListStaged(ctx)
	case types.ModeTracked:
		return l.ListTracked(ctx)
	}
	return nil, fmt.Errorf("mode must be 'staged' or 'tracked', got %q", mode)
}

// StaticLister serves fixed listings. It backs tests and callers that already
// know their candidate set.
type StaticLister struct {
	Staged  []string
	Tracked []string
	Err     error
}

func (s StaticLister) ListStaged(context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Staged, nil
}

func (s StaticLister) ListTracked(context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Tracked, nil
}
