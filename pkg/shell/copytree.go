package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// batch collects per-entry failures of a best-effort tree operation.
type batch struct {
	errs []error
}

func (b *batch) record(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

func (b *batch) ok() bool {
	return len(b.errs) == 0
}

func (b *batch) err() error {
	return errors.Join(b.errs...)
}

func copyTree(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) != 2 {
		return nil, ErrInvalidArgumentCount
	}

	src := filepath.Clean(e.session.Normalize(args[0]))
	dst := filepath.Clean(e.session.Normalize(args[1]))

	info, err := e.fs().Stat(src)
	if err != nil {
		return nil, pathError(args[0], ErrNotFound)
	}

	if !info.IsDir() {
		return nil, pathError(args[0], ErrNotADirectory)
	}

	if within(dst, src) {
		return nil, pathError(args[1], ErrInvalidPath)
	}

	result := walkCopy(ctx, e.fs(), src, dst)
	if !result.ok() {
		return nil, fmt.Errorf("copy %s: %w", args[0], result.err())
	}

	e.say("Directory copied successfully")
	return nil, nil
}

// walkCopy mirrors src into dst. Existing directories are reused and files
// overwritten; a failing entry does not stop the walk.
func walkCopy(ctx context.Context, fs afero.Fs, src, dst string) *batch {
	result := &batch{}

	info, err := fs.Stat(src)
	if err != nil {
		result.record(ioFailure(fmt.Sprintf("failed to read %s", src), err))
		return result
	}

	result.record(copyDir(ctx, fs, src, dst, info, nil, result))
	return result
}

// copyDir follows symlinks, so a linked directory is copied as a directory.
// Only cancellation aborts it; other failures go to result.
func copyDir(ctx context.Context, fs afero.Fs, src, dst string, info os.FileInfo, parents []os.FileInfo, result *batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if revisits(info, parents) {
		return nil
	}

	if exists, _ := afero.DirExists(fs, dst); !exists {
		if err := fs.MkdirAll(dst, 0755); err != nil {
			result.record(ioFailure(fmt.Sprintf("failed to create %s", dst), err))
			return nil
		}
	}

	children, err := afero.ReadDir(fs, src)
	if err != nil {
		result.record(ioFailure(fmt.Sprintf("failed to read %s", src), err))
		return nil
	}

	parents = append(parents, info)
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(src, child.Name())
		target := filepath.Join(dst, child.Name())

		childInfo, err := fs.Stat(path)
		if err != nil {
			result.record(ioFailure(fmt.Sprintf("failed to read %s", path), err))
			continue
		}

		if childInfo.IsDir() {
			if err := copyDir(ctx, fs, path, target, childInfo, parents, result); err != nil {
				return err
			}
			continue
		}

		result.record(copyFile(fs, path, target))
	}

	return nil
}

// revisits reports whether dir is one of the directories already open above
// it, which happens when a symlink points back up the tree.
func revisits(dir os.FileInfo, parents []os.FileInfo) bool {
	for _, parent := range parents {
		if os.SameFile(dir, parent) {
			return true
		}
	}

	return false
}

// within reports whether path is root or lies below it.
func within(path, root string) bool {
	if path == root {
		return true
	}

	return strings.HasPrefix(path, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator))
}
