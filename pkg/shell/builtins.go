package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

func (e *DefaultExecutor) registerBuiltins() {

	e.builtins["exit"] = func(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
		return nil, ErrExit
	}

	e.builtins["pwd"] = func(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
		return textOutput(e.session.Cwd() + "\n"), nil
	}

	e.builtins["cd"] = func(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {

		switch {
		case len(args) == 0:
			return nil, e.session.Chdir(e.session.Home())

		case args[0] == "..":
			e.session.Up()
			return nil, nil
		}

		return nil, e.session.Chdir(args[0])
	}

	e.builtins["ls"] = func(ctx context.Context, args []string, e *DefaultExecutor) (*Output, error) {
		entries, err := afero.ReadDir(e.fs(), e.session.Cwd())
		if err != nil {
			return nil, ioFailure(fmt.Sprintf("failed to list %s", e.session.Cwd()), err)
		}

		var b strings.Builder
		for _, entry := range entries {
			b.WriteString(entry.Name())
			b.WriteString("\r\n")
		}

		return textOutput(b.String()), nil
	}

	e.builtins["mkdir"] = mkdir
	e.builtins["rmdir"] = rmdir
	e.builtins["touch"] = touch
	e.builtins["cp"] = cp
	e.builtins["rm"] = rm
	e.builtins["cat"] = cat
	e.builtins["wc"] = wc
	e.builtins["zip"] = zipArchive
	e.builtins["unzip"] = unzipArchive
}
