package shell

import (
	"context"
)

type Executor interface {
	Execute(ctx context.Context, cmd ParsedCommand) (*Output, error)
}

type Parser interface {
	Parse(line string) ParsedCommand
}

// LineReader yields one input line per call, without the trailing newline.
// io.EOF ends the session.
type LineReader interface {
	ReadLine() (string, error)
}
