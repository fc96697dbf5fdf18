package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandError reports a git invocation that exited non-zero.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecLister lists files by running the git binary in Root.
type ExecLister struct {
	Root string
}

func (l *ExecLister) ListStaged(ctx context.Context) ([]string, error) {
	return l.list(ctx, "diff", "--cached", "--name-only", "--diff-filter=ACMR", "-z")
}

func (l *ExecLister) ListTracked(ctx context.Context) ([]string, error) {
	return l.list(ctx, "ls-files", "-z")
}

func (l *ExecLister) list(ctx context.Context, args ...string) ([]string, error) {
	out, err := run(ctx, l.Root, args...)
	if err != nil {
		return nil, err
	}
	return splitNames(out), nil
}

func run(ctx context.Context, root string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", root}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) || errors.Is(err, exec.ErrNotFound) {
			return nil, &CommandError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
		}
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

// splitNames splits NUL-separated (-z) git output. Names are kept byte for
// byte; only empty entries are dropped. ls-files prints an unmerged path once
// per stage, so repeats collapse onto the first occurrence.
func splitNames(out []byte) []string {
	fields := bytes.Split(out, []byte{0})
	names := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if len(f) == 0 {
			continue
		}
		s := string(f)
		if seen[s] {
			continue
		}
		seen[s] = true
		names = append(names, s)
	}
	return names
}
