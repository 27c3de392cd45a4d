package shell

import (
	"io"
	"strings"
	"unicode"
)

type RedirectMode int

const (
	RedirectNone RedirectMode = iota
	RedirectOverwrite
	RedirectAppend
)

func (m RedirectMode) String() string {
	switch m {
	case RedirectOverwrite:
		return ">"
	case RedirectAppend:
		return ">>"
	default:
		return ""
	}
}

type RedirectionSpec struct {
	Mode   RedirectMode
	Target string // unresolved, as typed
}

// ParsedCommand is one input line after tokenizing and redirect extraction.
type ParsedCommand struct {
	Name     string
	Args     []string
	Redirect RedirectionSpec
}

type DefaultParser struct {
	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultParser() *DefaultParser {
	d := &DefaultParser{
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return d
}

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	tokenBuffer := &tokenBuffer{
		builder: builder,
	}

	return tokenBuffer
}

func (tokenBuffer *tokenBuffer) isEmpty() bool {
	return tokenBuffer.builder.Len() == 0
}

func (tokenBuffer *tokenBuffer) appendRune(r rune) {
	tokenBuffer.builder.WriteRune(r)
}

func (tokenBuffer *tokenBuffer) flushIfNotEmpty(tokens []string) []string {
	if !tokenBuffer.isEmpty() {
		s := tokenBuffer.builder.String()
		tokenBuffer.builder.Reset()
		tokens = append(tokens, s)
	}

	return tokens

}

// tokenize splits line on runs of whitespace.
func (p *DefaultParser) tokenize(line string) []string {
	runeReader := p.newReader(line)
	tokenBuffer := newTokenBuffer(p.newBuilder())

	tokens := []string{}

	for {
		ch, _, err := runeReader.ReadRune()

		if err != nil {
			break
		}

		if unicode.IsSpace(ch) {
			tokens = tokenBuffer.flushIfNotEmpty(tokens)
		} else {
			tokenBuffer.appendRune(ch)
		}
	}

	return tokenBuffer.flushIfNotEmpty(tokens)
}

// extractRedirection strips the first ">" (or, failing that, ">>") and
// everything after it. Only the token right after the operator is kept as
// the target.
func extractRedirection(tokens []string) ([]string, RedirectionSpec) {
	for _, op := range []struct {
		token string
		mode  RedirectMode
	}{
		{">", RedirectOverwrite},
		{">>", RedirectAppend},
	} {
		idx := indexOf(tokens, op.token)
		if idx < 0 {
			continue
		}

		if idx+1 < len(tokens) {
			return tokens[:idx], RedirectionSpec{Mode: op.mode, Target: tokens[idx+1]}
		}

		// dangling operator: no target, no redirection
		return tokens[:idx], RedirectionSpec{Mode: RedirectNone}
	}

	return tokens, RedirectionSpec{Mode: RedirectNone}
}

func indexOf(tokens []string, target string) int {
	for i, tok := range tokens {
		if tok == target {
			return i
		}
	}
	return -1
}

// Parse never fails; unknown command names are left for the executor.
func (p *DefaultParser) Parse(line string) ParsedCommand {
	tokens, redirect := extractRedirection(p.tokenize(line))

	cmd := ParsedCommand{
		Args:     []string{},
		Redirect: redirect,
	}

	if len(tokens) == 0 {
		return cmd
	}

	cmd.Name = strings.ToLower(tokens[0])
	cmd.Args = append(cmd.Args, tokens[1:]...)

	return cmd
}
