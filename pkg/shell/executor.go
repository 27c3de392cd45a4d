package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Output is the textual result of a command. Commands without one return nil.
type Output struct {
	Text string
}

func textOutput(text string) *Output {
	return &Output{Text: text}
}

// type Builtin
type Builtin func(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error)

// DefaultExecutor dispatches parsed commands to the builtin table.
// Status messages and warnings go to Out; failures are returned.
type DefaultExecutor struct {
	Out      io.Writer
	session  *Session
	builtins map[string]Builtin
}

func NewExecutor(session *Session, out io.Writer) *DefaultExecutor {
	e := &DefaultExecutor{
		Out:      out,
		session:  session,
		builtins: make(map[string]Builtin),
	}

	e.registerBuiltins()
	return e
}

func (e *DefaultExecutor) Execute(ctx context.Context, cmd ParsedCommand) (*Output, error) {
	fn, ok := e.builtins[cmd.Name]

	if !ok {
		return nil, ErrCommandNotFound
	}

	return fn(ctx, cmd.Args, e)
}

// Lookup reports whether name is a registered builtin.
func (e *DefaultExecutor) Lookup(name string) bool {
	_, ok := e.builtins[name]
	return ok
}

func (e *DefaultExecutor) Session() *Session {
	return e.session
}

func (e *DefaultExecutor) fs() afero.Fs {
	return e.session.fs
}

func (e *DefaultExecutor) say(format string, args ...any) {
	fmt.Fprintf(e.Out, format+"\n", args...)
}
