package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrExit is returned by the exit builtin to stop the read loop.
	ErrExit = errors.New("exit")

	ErrCommandNotFound       = errors.New("command not found")
	ErrInsufficientArguments = errors.New("insufficient arguments")
	ErrInvalidArgumentCount  = errors.New("invalid number of arguments")
	ErrInvalidPath           = errors.New("invalid path")
	ErrNotFound              = errors.New("not found")
	ErrNotAFile              = errors.New("not a file")
	ErrNotADirectory         = errors.New("not a directory")
	ErrAlreadyExists         = errors.New("already exists")
	ErrHasChildren           = errors.New("directory has children")
	ErrIO                    = errors.New("i/o failure")
)

// pathError tags arg with one of the sentinels above.
func pathError(arg string, kind error) error {
	return fmt.Errorf("%s: %w", arg, kind)
}

func ioFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
