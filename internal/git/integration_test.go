package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func gitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func setupRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	gitCmd(t, dir, "init", "--initial-branch=main")
	writeFile(t, dir, "a.txt", "one\n")
	writeFile(t, dir, "uv.lock", "lock v1\n")
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "-m", "Initial commit")

	writeFile(t, dir, "a.txt", "two\n")
	writeFile(t, dir, "uv.lock", "lock v2\n")
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "-m", "Update files", "-m", "Touch both tracked files.")

	return dir
}

func TestClientAgainstRealRepository(t *testing.T) {
	dir := setupRepo(t)
	ctx := context.Background()

	c, err := New(ctx, dir)
	require.NoError(t, err)

	files, err := c.Diff(ctx, "HEAD~1")
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "a.txt", files[0].NewPath)
	require.Equal(t, "uv.lock", files[1].NewPath)
	require.Contains(t, files[0].Diff, "+two")

	filtered := Filter(files, []string{"uv.lock"})
	require.Len(t, filtered, 1)
	require.Equal(t, "a.txt", filtered[0].NewPath)

	commits, err := c.History(ctx, "HEAD~1", 10)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	require.Equal(t, "Update files", commits[0].Subject)
	require.Equal(t, "Touch both tracked files.", commits[0].Body)

	recent, err := c.History(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "Update files", recent[0].Subject, "newest first")
}

func TestClientCachedDiffAgainstRealRepository(t *testing.T) {
	dir := setupRepo(t)
	ctx := context.Background()

	c, err := New(ctx, dir)
	require.NoError(t, err)

	// nothing staged yet
	files, err := c.CachedDiff(ctx)
	require.NoError(t, err)
	require.Empty(t, files)

	writeFile(t, dir, "a.txt", "three\n")
	gitCmd(t, dir, "add", "a.txt")

	files, err = c.CachedDiff(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "a.txt", files[0].NewPath)
	require.Contains(t, files[0].Diff, "+three")
}

func TestClientInvalidRef(t *testing.T) {
	dir := setupRepo(t)
	ctx := context.Background()

	c, err := New(ctx, dir)
	require.NoError(t, err)

	_, err = c.Diff(ctx, "no-such-branch")
	require.ErrorIs(t, err, ErrGitCommand)
}

func TestNewNotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	_, err := New(context.Background(), t.TempDir())
	require.ErrorIs(t, err, ErrNotRepository)
}
