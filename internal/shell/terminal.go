package shell

import (
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/Neev4n/CodeCrafters-Shell-GO/minishell/pkg/shell"
)

// Reader is a shell.LineReader that may hold terminal state.
type Reader interface {
	shell.LineReader
	io.Closer
}

// NewReader picks a readline editor when in is an interactive terminal and a
// plain prompt-less reader for pipes and files.
func NewReader(in io.Reader, out io.Writer, prompt string) (Reader, error) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          prompt,
			Stdin:           f,
			Stdout:          out,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return nil, err
		}

		return &terminalReader{rl: rl}, nil
	}

	return nopCloser{shell.NewLineReader(in, out, "")}, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type terminalReader struct {
	rl *readline.Instance
}

func (r *terminalReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()

	// ^C drops the current line, like bash
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}

	return line, err
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}

type nopCloser struct {
	shell.LineReader
}

func (nopCloser) Close() error {
	return nil
}
