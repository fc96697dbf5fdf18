package git

import (
	"context"
	"errors"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitLister reads the index and HEAD tree in-process, for hosts without a
// git binary.
type GoGitLister struct {
	repo *gogit.Repository
}

// OpenGoGit opens the repository containing root.
func OpenGoGit(root string) (*GoGitLister, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &GoGitLister{repo: repo}, nil
}

func (l *GoGitLister) ListTracked(_ context.Context) ([]string, error) {
	idx, err := l.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	seen := map[string]bool{}
	var out []string
	for _, e := range idx.Entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e.Name)
	}
	return out, nil
}

type headEntry struct {
	hash plumbing.Hash
	mode filemode.FileMode
}

// ListStaged compares merged index entries with the HEAD tree. Entries absent
// from HEAD or differing in blob or mode are reported; deletions and
// unmerged paths never are. An unborn HEAD reports every index entry.
func (l *GoGitLister) ListStaged(_ context.Context) ([]string, error) {
	idx, err := l.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	head, err := l.headEntries()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range idx.Entries {
		// Merged entries decode as stage 0; 1-3 are conflict stages.
		if e.Stage != 0 || e.IntentToAdd {
			continue
		}
		if h, ok := head[e.Name]; ok && h.hash == e.Hash && h.mode == e.Mode {
			continue
		}
		out = append(out, e.Name)
	}
	return out, nil
}

func (l *GoGitLister) headEntries() (map[string]headEntry, error) {
	entries := map[string]headEntry{}
	ref, err := l.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := l.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("read HEAD tree: %w", err)
	}
	w := object.NewTreeWalker(tree, true, nil)
	defer w.Close()
	for {
		name, entry, err := w.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("walk HEAD tree: %w", err)
		}
		if entry.Mode == filemode.Dir {
			continue
		}
		entries[name] = headEntry{hash: entry.Hash, mode: entry.Mode}
	}
	return entries, nil
}
