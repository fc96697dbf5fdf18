package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	t   *testing.T
	dir string
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	if !GitExists() {
		t.Skip("git not installed")
	}
	r := &testRepo{t: t, dir: t.TempDir()}
	r.run("init", "-q", ".")
	r.run("config", "user.email", "test@example.com")
	r.run("config", "user.name", "tester")
	r.run("config", "commit.gpgsign", "false")
	return r
}

func (r *testRepo) run(args ...string) {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	if out, err := cmd.CombinedOutput(); err != nil {
		r.t.Fatalf("git %v: %v\n%s", args, err, string(out))
	}
}

func (r *testRepo) write(name, content string) {
	r.t.Helper()
	p := filepath.Join(r.dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(r.t, os.WriteFile(p, []byte(content), 0o644))
}

func TestFindRoot_FromNestedDir(t *testing.T) {
	r := newTestRepo(t)
	nested := filepath.Join(r.dir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := FindRoot(nested)
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(r.dir)
	got, _ := filepath.EvalSymlinks(root)
	assert.Equal(t, want, got)
}

func TestFindRoot_DepthBound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	parts := []string{dir}
	for i := 0; i < MaxRootDepth; i++ {
		parts = append(parts, "d")
	}
	deepest := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(deepest, 0o755))

	_, err := FindRoot(deepest)
	assert.ErrorIs(t, err, ErrRepositoryNotFound)

	root, err := FindRoot(filepath.Dir(deepest))
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRoot_GitFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: /elsewhere\n"), 0o644))
	root, err := FindRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRoot_NotADirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, nil, 0o644))
	_, err := FindRoot(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestSplitNames(t *testing.T) {
	out := []byte("a.txt\x00dir/with space.yml\x00\x00 deploy.key\x00cfg.yml \x00z.gd\x00")
	assert.Equal(t, []string{"a.txt", "dir/with space.yml", " deploy.key", "cfg.yml ", "z.gd"}, splitNames(out))
	assert.Empty(t, splitNames(nil))

	// Unmerged paths repeat once per stage.
	out = []byte("deploy.key\x00deploy.key\x00deploy.key\x00main.gd\x00")
	assert.Equal(t, []string{"deploy.key", "main.gd"}, splitNames(out))
}

func TestRepoMetadata(t *testing.T) {
	r := newTestRepo(t)
	r.run("commit", "--allow-empty", "-q", "-m", "init")

	repo, commit, branch := RepoMetadata(r.dir)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, branch)
	_ = repo // may be empty when no remote configured
	assert.False(t, strings.ContainsRune(commit, '\n'))
}

func TestHooksDir(t *testing.T) {
	r := newTestRepo(t)
	dir, err := HooksDir(context.Background(), r.dir)
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(filepath.Join(r.dir, ".git"))
	assert.Equal(t, filepath.Join(want, "hooks"), filepath.Join(evalParent(t, dir), filepath.Base(dir)))
}

func TestHooksDir_CustomHooksPath(t *testing.T) {
	r := newTestRepo(t)
	r.run("config", "core.hooksPath", "tools/hooks")
	dir, err := HooksDir(context.Background(), r.dir)
	require.NoError(t, err)
	assert.Equal(t, "hooks", filepath.Base(dir))
	assert.Equal(t, "tools", filepath.Base(filepath.Dir(dir)))
}

// evalParent resolves symlinks in the parent of p, which exists even when p
// does not.
func evalParent(t *testing.T, p string) string {
	t.Helper()
	parent, err := filepath.EvalSymlinks(filepath.Dir(p))
	require.NoError(t, err)
	return parent
}
