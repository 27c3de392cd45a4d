package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// handles each mode of redirection
type RedirectionHandler interface {
	CanHandle(mode RedirectMode) bool
	Validate(redirection RedirectionSpec) error
	Apply(fs afero.Fs, target string, output *Output) error
}

// StdoutRedirectionHandler writes a command's text to a file.
type StdoutRedirectionHandler struct {
	Overwrite bool
}

func (handler *StdoutRedirectionHandler) CanHandle(mode RedirectMode) bool {
	if handler.Overwrite {
		return mode == RedirectOverwrite
	}

	return mode == RedirectAppend
}

func (handler *StdoutRedirectionHandler) Validate(redirection RedirectionSpec) error {
	if redirection.Target == "" {
		return pathError("redirection", ErrInvalidPath)
	}

	return nil
}

func (handler *StdoutRedirectionHandler) flags() int {
	flag := os.O_CREATE | os.O_WRONLY

	if handler.Overwrite {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}

	return flag
}

// Apply creates target when absent. A nil output leaves the file untouched.
func (handler *StdoutRedirectionHandler) Apply(fs afero.Fs, target string, output *Output) error {
	if output == nil {
		return nil
	}

	file, err := fs.OpenFile(target, handler.flags(), 0644)
	if err != nil {
		return ioFailure(fmt.Sprintf("failed to open %s", target), err)
	}

	_, werr := io.WriteString(file, output.Text)
	cerr := file.Close()

	if werr != nil {
		return ioFailure(fmt.Sprintf("failed to write %s", target), werr)
	}
	if cerr != nil {
		return ioFailure(fmt.Sprintf("failed to close %s", target), cerr)
	}

	return nil
}

func defaultRedirectionHandlers() []RedirectionHandler {
	return []RedirectionHandler{
		&StdoutRedirectionHandler{Overwrite: true},
		&StdoutRedirectionHandler{Overwrite: false},
	}
}
