package shell

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Normalize(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"absolute path is unchanged", "/etc/hosts", "/etc/hosts"},
		{"absolute path is not cleaned", "/a/../b", "/a/../b"},
		{"relative file", "notes.txt", "/work/notes.txt"},
		{"relative nested", "a/b/c", "/work/a/b/c"},
		{"relative with parent", "../x", "/x"},
		{"dot", ".", "/work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, env.session.Normalize(tt.input))
		})
	}
}

func TestNewSession(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file", nil, 0644))

	_, err := NewSession(fs, "/missing", "/")
	assert.ErrorIs(t, err, ErrNotADirectory)

	_, err = NewSession(fs, "/file", "/")
	assert.ErrorIs(t, err, ErrNotADirectory)

	session, err := NewSession(fs, "/", "/")
	require.NoError(t, err)
	assert.Equal(t, "/", session.Cwd())
}

func TestSession_Chdir(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.fs.MkdirAll("/work/sub/deeper", 0755))
	env.writeFile(t, "/work/file.txt", "x")

	require.NoError(t, env.session.Chdir("sub"))
	assert.Equal(t, "/work/sub", env.session.Cwd())

	require.NoError(t, env.session.Chdir("deeper/.."))
	assert.Equal(t, "/work/sub", env.session.Cwd())

	err := env.session.Chdir("/work/file.txt")
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Equal(t, "/work/sub", env.session.Cwd())

	err = env.session.Chdir("ghost")
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Equal(t, "/work/sub", env.session.Cwd())
}

func TestSession_Up(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/a/b", 0755))

	session, err := NewSession(fs, "/a/b", "/")
	require.NoError(t, err)

	session.Up()
	assert.Equal(t, "/a", session.Cwd())
	session.Up()
	assert.Equal(t, "/", session.Cwd())
	session.Up()
	assert.Equal(t, "/", session.Cwd())
}
