package shell

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

func mkdir(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) == 0 {
		return nil, ErrInsufficientArguments
	}

	var errs []error
	for _, arg := range args {
		if err := e.fs().MkdirAll(e.session.Normalize(arg), 0755); err != nil {
			errs = append(errs, ioFailure(fmt.Sprintf("failed to create %s", arg), err))
		}
	}

	return nil, errors.Join(errs...)
}

func rmdir(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) == 0 {
		return nil, ErrInsufficientArguments
	}

	if args[0] == "*" {
		removeEmptyChildren(e.fs(), e.session.Cwd())
		e.say("deleted all empty children")
		return nil, nil
	}

	dir := e.session.Normalize(args[0])

	if ok, _ := afero.DirExists(e.fs(), dir); !ok {
		return nil, pathError(args[0], ErrNotADirectory)
	}

	if empty, err := afero.IsEmpty(e.fs(), dir); err != nil || !empty {
		return nil, pathError(args[0], ErrHasChildren)
	}

	if err := e.fs().Remove(dir); err != nil {
		return nil, pathError(args[0], ErrHasChildren)
	}

	e.say("Directory successfully deleted")
	return nil, nil
}

// removeEmptyChildren is best effort: anything that is not an empty
// directory is left alone and nothing is reported.
func removeEmptyChildren(fs afero.Fs, dir string) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		child := filepath.Join(dir, entry.Name())
		if empty, err := afero.IsEmpty(fs, child); err == nil && empty {
			_ = fs.Remove(child)
		}
	}
}
