package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

func cat(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, ErrInvalidArgumentCount
	}

	var b strings.Builder

	for _, arg := range args {
		err := scanLines(e.fs(), e.session.Normalize(arg), arg, func(line string, _ bool) {
			b.WriteString(line)
			b.WriteByte('\n')
		})
		if err != nil {
			return nil, err
		}
	}

	return textOutput(b.String()), nil
}

type fileCounts struct {
	lines int
	words int
	chars int
}

func wc(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
	if len(args) == 0 {
		return nil, ErrInsufficientArguments
	}

	var b strings.Builder

	for _, arg := range args {
		var counts fileCounts

		err := scanLines(e.fs(), e.session.Normalize(arg), arg, func(line string, first bool) {
			// the newline separating this line from the previous one
			if !first {
				counts.chars++
			}
			counts.lines++
			counts.chars += utf8.RuneCountInString(line)
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				counts.words += len(strings.Fields(trimmed))
			}
		})
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(&b, "%d %d %d %s\n", counts.lines, counts.words, counts.chars, arg)
	}

	return textOutput(b.String()), nil
}

// scanLines feeds every line of the regular file at path to fn, with line
// terminators removed. arg is the name used in errors.
func scanLines(fs afero.Fs, path, arg string, fn func(line string, first bool)) error {
	info, err := fs.Stat(path)
	if err != nil {
		return pathError(arg, ErrNotFound)
	}

	if !info.Mode().IsRegular() {
		return pathError(arg, ErrNotAFile)
	}

	file, err := fs.Open(path)
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to read %s", arg), err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	first := true
	for {
		chunk, err := reader.ReadString('\n')
		if chunk != "" {
			for _, line := range splitLines(chunk) {
				fn(line, first)
				first = false
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return ioFailure(fmt.Sprintf("failed to read %s", arg), err)
		}
	}
}

// splitLines breaks a chunk read up to '\n' into lines. "\n", "\r\n" and a
// lone "\r" all end a line; the chunk's own terminator yields no extra line.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")

	return strings.Split(chunk, "\r")
}
