package shell

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Session owns the mutable working directory of one shell.
type Session struct {
	fs   afero.Fs
	cwd  string
	home string
}

// NewSession validates that cwd is an existing directory on fs.
func NewSession(fs afero.Fs, cwd, home string) (*Session, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, pathError(cwd, ErrInvalidPath)
	}

	if ok, _ := afero.DirExists(fs, abs); !ok {
		return nil, pathError(cwd, ErrNotADirectory)
	}

	return &Session{fs: fs, cwd: abs, home: home}, nil
}

func (s *Session) Cwd() string {
	return s.cwd
}

func (s *Session) Home() string {
	return s.home
}

func (s *Session) Fs() afero.Fs {
	return s.fs
}

// Normalize returns absolute paths unchanged and joins everything else onto
// the working directory. Existence is not checked.
func (s *Session) Normalize(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(s.cwd, path)
}

// Chdir commits dir as the working directory if it is an existing directory.
func (s *Session) Chdir(dir string) error {
	target := s.Normalize(dir)

	if ok, _ := afero.DirExists(s.fs, target); !ok {
		return pathError(dir, ErrInvalidPath)
	}

	s.cwd = filepath.Clean(target)
	return nil
}

// Up moves to the parent directory; at the filesystem root it does nothing.
func (s *Session) Up() {
	parent := filepath.Dir(s.cwd)
	if parent != s.cwd {
		s.cwd = parent
	}
}
