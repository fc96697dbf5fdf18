package git

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redactyl/secretscan/internal/types"
)

// seedRepo commits a.txt and b.txt, then stages: a modification to a.txt,
// a new file with a space in its name, a deletion of b.txt, and leaves an
// unstaged edit in keep.gd.
func seedRepo(t *testing.T) *testRepo {
	r := newTestRepo(t)
	r.write("a.txt", "one\n")
	r.write("b.txt", "two\n")
	r.write("keep.gd", "extends Node\n")
	r.run("add", ".")
	r.run("commit", "-q", "-m", "base")

	r.write("a.txt", "one\nmore\n")
	r.write("new dir/c d.yml", "k: v\n")
	r.run("add", "a.txt", "new dir/c d.yml")
	r.run("rm", "-q", "b.txt")
	r.write("keep.gd", "extends Node2D\n")
	return r
}

func TestExecLister(t *testing.T) {
	r := seedRepo(t)
	l := &ExecLister{Root: r.dir}
	ctx := context.Background()

	staged, err := l.ListStaged(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "new dir/c d.yml"}, staged)

	tracked, err := l.ListTracked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "keep.gd", "new dir/c d.yml"}, tracked)
}

func TestExecLister_Rename(t *testing.T) {
	r := newTestRepo(t)
	r.write("old.txt", "content that is long enough to be detected as a rename\n")
	r.run("add", ".")
	r.run("commit", "-q", "-m", "base")
	r.run("mv", "old.txt", "new.txt")

	staged, err := (&ExecLister{Root: r.dir}).ListStaged(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"new.txt"}, staged)
}

func TestExecLister_FailureIsCommandError(t *testing.T) {
	if !GitExists() {
		t.Skip("git not installed")
	}
	l := &ExecLister{Root: t.TempDir()}
	_, err := l.ListTracked(context.Background())
	require.Error(t, err)

	var ce *CommandError
	require.True(t, errors.As(err, &ce), "want *CommandError, got %T", err)
	assert.Equal(t, []string{"ls-files", "-z"}, ce.Args)
	assert.Contains(t, err.Error(), "git ls-files")
}

func TestGoGitLister_AgreesWithExec(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()
	gl, err := OpenGoGit(r.dir)
	require.NoError(t, err)
	el := &ExecLister{Root: r.dir}

	for _, mode := range []types.Mode{types.ModeStaged, types.ModeTracked} {
		want, err := List(ctx, el, mode)
		require.NoError(t, err)
		got, err := List(ctx, gl, mode)
		require.NoError(t, err)
		assert.Equal(t, want, got, "mode %s", mode)
	}
}

func TestGoGitLister_UnbornHead(t *testing.T) {
	r := newTestRepo(t)
	r.write("first.gd", "extends Node\n")
	r.write("secrets/x.txt", "x\n")
	r.run("add", ".")

	gl, err := OpenGoGit(r.dir)
	require.NoError(t, err)
	staged, err := gl.ListStaged(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first.gd", "secrets/x.txt"}, staged)

	execStaged, err := (&ExecLister{Root: r.dir}).ListStaged(context.Background())
	require.NoError(t, err)
	assert.Equal(t, staged, execStaged)
}

func TestListers_ConflictedMergeListsPathOnce(t *testing.T) {
	r := newTestRepo(t)
	r.write("deploy.key", "base\n")
	r.write("main.gd", "extends Node\n")
	r.run("add", ".")
	r.run("commit", "-q", "-m", "base")
	r.run("checkout", "-q", "-b", "side")
	r.write("deploy.key", "side\n")
	r.run("commit", "-q", "-am", "side")
	r.run("checkout", "-q", "-")
	r.write("deploy.key", "main\n")
	r.run("commit", "-q", "-am", "main")

	merge := exec.Command("git", "merge", "-q", "side")
	merge.Dir = r.dir
	out, err := merge.CombinedOutput()
	require.Error(t, err, "expected a conflict: %s", out)

	ctx := context.Background()
	tracked, err := (&ExecLister{Root: r.dir}).ListTracked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"deploy.key", "main.gd"}, tracked)

	gl, err := OpenGoGit(r.dir)
	require.NoError(t, err)
	goTracked, err := gl.ListTracked(ctx)
	require.NoError(t, err)
	assert.Equal(t, tracked, goTracked)
}

func TestListers_KeepSurroundingSpaces(t *testing.T) {
	r := newTestRepo(t)
	r.write(" deploy.key", "key\n")
	r.write("cfg.yml ", "k: v\n")
	r.run("add", ".")

	ctx := context.Background()
	want := []string{" deploy.key", "cfg.yml "}
	staged, err := (&ExecLister{Root: r.dir}).ListStaged(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, staged)

	gl, err := OpenGoGit(r.dir)
	require.NoError(t, err)
	goStaged, err := gl.ListStaged(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, goStaged)
}

func TestOpenGoGit_NotARepo(t *testing.T) {
	_, err := OpenGoGit(t.TempDir())
	assert.ErrorIs(t, err, ErrRepositoryNotFound)
}

func TestNewLister(t *testing.T) {
	l, err := NewLister("/repo", BackendExec)
	require.NoError(t, err)
	assert.IsType(t, &ExecLister{}, l)

	_, err = NewLister("/repo", "svn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown git backend")
}

func TestList_Dispatch(t *testing.T) {
	s := StaticLister{Staged: []string{"s.txt"}, Tracked: []string{"s.txt", "t.txt"}}
	ctx := context.Background()

	got, err := List(ctx, s, types.ModeStaged)
	require.NoError(t, err)
	assert.Equal(t, []string{"s.txt"}, got)

	got, err = List(ctx, s, types.ModeTracked)
	require.NoError(t, err)
	assert.Equal(t, []string{"s.txt", "t.txt"}, got)

	_, err = List(ctx, s, types.Mode("all"))
	require.Error(t, err)

	boom := errors.New("boom")
	_, err = List(ctx, StaticLister{Err: boom}, types.ModeStaged)
	assert.ErrorIs(t, err, boom)
}
