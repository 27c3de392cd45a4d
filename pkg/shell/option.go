package shell

import "github.com/rs/zerolog"

// Option customises a Shell.
type Option func(*Shell)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

func WithParser(parser Parser) Option {
	return func(s *Shell) {
		s.parser = parser
	}
}

func WithExecutor(executor Executor) Option {
	return func(s *Shell) {
		s.executor = executor
	}
}

func WithRedirectionHandlers(handlers ...RedirectionHandler) Option {
	return func(s *Shell) {
		s.redirections = handlers
	}
}
