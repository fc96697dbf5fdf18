package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// MaxRootDepth bounds how many directories FindRoot climbs looking for .git.
const MaxRootDepth = 15

// ErrRepositoryNotFound is returned when no enclosing git repository exists.
var ErrRepositoryNotFound = errors.New("not inside a git repository (could not find .git)")

// FindRoot walks up from start until a directory containing .git is found.
// .git may be a directory or a file (worktrees, submodules).
func FindRoot(start string) (string, error) {
	cur, err := validateRoot(start)
	if err != nil {
		return "", err
	}
	for i := 0; i < MaxRootDepth; i++ {
		if _, err := os.Stat(filepath.Join(cur, ".git")); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return "", ErrRepositoryNotFound
}

// validateRoot validates and normalizes a directory path.
// Returns the cleaned absolute path or an error if invalid.
func validateRoot(root string) (string, error) {
	// Check for null bytes (potential injection)
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("invalid path: contains null byte")
	}

	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return abs, nil
}

// GitExists reports whether a git binary is on PATH.
func GitExists() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// RepoMetadata returns (repo, commit, branch) best-effort for the given root.
// Empty strings are returned on failure.
func RepoMetadata(root string) (string, string, string) {
	validRoot, err := validateRoot(root)
	if err != nil || !GitExists() {
		return "", "", ""
	}

	repo := ""
	if out, err := exec.Command("git", "-C", validRoot, "config", "--get", "remote.origin.url").Output(); err == nil {
		repo = strings.TrimSpace(string(out))
	}
	commit := ""
	if out, err := exec.Command("git", "-C", validRoot, "rev-parse", "HEAD").Output(); err == nil {
		commit = strings.TrimSpace(string(out))
	}
	branch := ""
	if out, err := exec.Command("git", "-C", validRoot, "rev-parse", "--abbrev-ref", "HEAD").Output(); err == nil {
		branch = strings.TrimSpace(string(out))
	}
	return repo, commit, branch
}

// HooksDir returns the directory git reads hooks from for the repository at
// root. The git binary is asked first so core.hooksPath and worktrees are
// honoured; without it only a plain .git directory is supported.
func HooksDir(ctx context.Context, root string) (string, error) {
	validRoot, err := validateRoot(root)
	if err != nil {
		return "", err
	}
	if GitExists() {
		out, err := run(ctx, validRoot, "rev-parse", "--git-path", "hooks")
		if err != nil {
			return "", err
		}
		dir := strings.TrimSpace(string(out))
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(validRoot, dir)
		}
		return dir, nil
	}
	gitDir := filepath.Join(validRoot, ".git")
	st, err := os.Stat(gitDir)
	if err != nil {
		return "", ErrRepositoryNotFound
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%s is a file; installing hooks into a linked worktree needs the git binary", gitDir)
	}
	return filepath.Join(gitDir, "hooks"), nil
}
