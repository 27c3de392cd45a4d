package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

func touch(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) == 0 {
		return nil, ErrInsufficientArguments
	}

	path := e.session.Normalize(args[0])

	if exists, _ := afero.Exists(e.fs(), path); exists {
		return nil, pathError(args[0], ErrAlreadyExists)
	}

	file, err := e.fs().OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to create %s", args[0]), err)
	}

	if err := file.Close(); err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to create %s", args[0]), err)
	}

	e.say("File created successfully")
	return nil, nil
}

func cp(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) > 0 && args[0] == "-r" {
		return copyTree(ctx, args[1:], e)
	}

	if len(args) != 2 {
		return nil, ErrInvalidArgumentCount
	}

	src := e.session.Normalize(args[0])
	info, err := e.fs().Stat(src)
	if err != nil {
		return nil, pathError(args[0], ErrNotFound)
	}

	if info.IsDir() {
		return nil, pathError(args[0], ErrNotAFile)
	}

	dst := e.session.Normalize(args[1])
	if ok, _ := afero.DirExists(e.fs(), filepath.Dir(dst)); !ok {
		return nil, pathError(args[1], ErrInvalidPath)
	}

	existed, _ := afero.Exists(e.fs(), dst)

	if err := copyFile(e.fs(), src, dst); err != nil {
		return nil, err
	}

	if existed {
		e.say("File is overwritten successfully")
	} else {
		e.say("File is created and copied successfully")
	}

	return nil, nil
}

func rm(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) == 0 {
		return nil, ErrInsufficientArguments
	}

	path := e.session.Normalize(args[0])

	info, err := e.fs().Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, pathError(args[0], ErrNotFound)
	}

	if err := e.fs().Remove(path); err != nil {
		return nil, ioFailure(fmt.Sprintf("failed to delete %s", args[0]), err)
	}

	e.say("File successfully deleted")
	return nil, nil
}

// copyFile replaces dst with the contents of src, keeping src's permissions.
func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to open %s", src), err)
	}
	defer in.Close()

	perm := os.FileMode(0644)
	if info, err := in.Stat(); err == nil {
		perm = info.Mode().Perm()
	}

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to open %s", dst), err)
	}

	_, cerr := io.Copy(out, in)
	closeErr := out.Close()

	if cerr != nil {
		return ioFailure(fmt.Sprintf("failed to copy %s", src), cerr)
	}
	if closeErr != nil {
		return ioFailure(fmt.Sprintf("failed to write %s", dst), closeErr)
	}

	return nil
}
