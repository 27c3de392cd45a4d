package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// type Shell
type Shell struct {
	reader       LineReader
	Out          io.Writer
	Err          io.Writer
	session      *Session
	executor     Executor
	parser       Parser
	redirections []RedirectionHandler
	logger       zerolog.Logger
}

// func New
func New(session *Session, reader LineReader, out, errw io.Writer, opts ...Option) *Shell {
	s := &Shell{
		reader:       reader,
		Out:          out,
		Err:          errw,
		session:      session,
		redirections: defaultRedirectionHandlers(),
		logger:       zerolog.Nop(),
	}

	s.executor = NewExecutor(session, out)
	s.parser = NewDefaultParser()

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Shell) Session() *Session {
	return s.session
}

// Run reads lines until exit, end of input, or ctx is done. Command failures
// are reported and never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info().Str("cwd", s.session.Cwd()).Msg("shell session started")
	defer func() {
		s.logger.Info().Msg("shell session ended")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadLine()

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.Exec(ctx, line); errors.Is(err, ErrExit) {
			return nil
		}
	}
}

// Exec runs a single line: parse, dispatch, then print or redirect the
// output. Failures are written to Err and returned; ErrExit is returned
// without a message.
func (s *Shell) Exec(ctx context.Context, line string) (err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("line", line).
				Interface("panic", r).
				Msg("command panicked")

			fmt.Fprintln(s.Err, "Error during command:", line)
			err = fmt.Errorf("command panicked: %v", r)
		}
	}()

	cmd := s.parser.Parse(line)

	output, err := s.executor.Execute(ctx, cmd)

	s.logger.Debug().
		Str("command", cmd.Name).
		Strs("args", cmd.Args).
		Str("redirect", cmd.Redirect.Mode.String()).
		Str("target", cmd.Redirect.Target).
		Dur("duration", time.Since(start)).
		Err(err).
		Msg("command executed")

	if errors.Is(err, ErrExit) {
		return err
	}

	if err == nil {
		err = s.emit(cmd, output)
	}

	if err != nil {
		s.report(cmd, err)
	}

	return err
}

func (s *Shell) emit(cmd ParsedCommand, output *Output) error {
	if output == nil {
		return nil
	}

	if cmd.Redirect.Mode == RedirectNone {
		_, err := io.WriteString(s.Out, output.Text)
		return err
	}

	for _, handler := range s.redirections {
		if !handler.CanHandle(cmd.Redirect.Mode) {
			continue
		}

		if err := handler.Validate(cmd.Redirect); err != nil {
			return err
		}

		return handler.Apply(s.session.Fs(), s.session.Normalize(cmd.Redirect.Target), output)
	}

	return nil
}

func (s *Shell) report(cmd ParsedCommand, err error) {
	name := cmd.Name
	if name == "" {
		name = "shell"
	}

	fmt.Fprintf(s.Err, "%s: %v\n", name, err)
}
