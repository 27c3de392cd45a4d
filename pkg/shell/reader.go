package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptReader is the plain LineReader used for pipes and files.
type promptReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewLineReader prints prompt (when non-empty) before every read.
func NewLineReader(in io.Reader, out io.Writer, prompt string) LineReader {
	return &promptReader{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
	}
}

func (r *promptReader) ReadLine() (string, error) {
	if r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}

	line, err := r.in.ReadString('\n')

	// last line without a trailing newline
	if err == io.EOF && line != "" {
		return strings.TrimRight(line, "\r\n"), nil
	}

	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
