package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testCwd  = "/work"
	testHome = "/home/tester"
)

type testEnv struct {
	fs       afero.Fs
	session  *Session
	executor *DefaultExecutor
	out      *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testCwd, 0755))
	require.NoError(t, fs.MkdirAll(testHome, 0755))

	session, err := NewSession(fs, testCwd, testHome)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &testEnv{
		fs:       fs,
		session:  session,
		executor: NewExecutor(session, out),
		out:      out,
	}
}

// run parses and executes line without redirection handling.
func (env *testEnv) run(line string) (*Output, error) {
	return env.executor.Execute(context.Background(), NewDefaultParser().Parse(line))
}

func (env *testEnv) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, env.fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(env.fs, path, []byte(content), 0644))
}

func (env *testEnv) readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(env.fs, path)
	require.NoError(t, err)
	return string(data)
}

// newDiskEnv is newTestEnv on the real filesystem, rooted at a temp dir.
func newDiskEnv(t *testing.T) (*testEnv, string) {
	t.Helper()

	dir := t.TempDir()
	fs := afero.NewOsFs()

	session, err := NewSession(fs, dir, dir)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &testEnv{
		fs:       fs,
		session:  session,
		executor: NewExecutor(session, out),
		out:      out,
	}, dir
}

// linkedTree lays out src/real/a.txt with a file link, a directory link and a
// link back up to src.
func linkedTree(t *testing.T, env *testEnv, dir string) {
	t.Helper()

	src := filepath.Join(dir, "src")
	env.writeFile(t, filepath.Join(src, "real", "a.txt"), "hello")
	require.NoError(t, os.Symlink(filepath.Join("real", "a.txt"), filepath.Join(src, "link.txt")))
	require.NoError(t, os.Symlink("real", filepath.Join(src, "linkdir")))
	require.NoError(t, os.Symlink("..", filepath.Join(src, "real", "back")))
}
