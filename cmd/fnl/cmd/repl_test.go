package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letung3105/fnl/internal/config"
)

type fakeReader struct {
	lines   []string
	prompts []string
	history []string
}

func (r *fakeReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *fakeReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

func newTestRepl(in lineReader) (*repl, *bytes.Buffer, *bytes.Buffer) {
	a := &app{
		cfg:    config.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	a.cfg.Output.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return newRepl(a, cmd, in), &stdout, &stderr
}

func TestReplMultiLineInput(t *testing.T) {
	in := &fakeReader{lines: []string{
		"fn f() {",
		"  return 1;",
		"}",
		":quit",
		"fn never() {}",
	}}
	r, stdout, stderr := newTestRepl(in)
	require.NoError(t, r.loop())

	assert := assert.New(t)
	assert.Equal([]string{"fnl> ", "...> ", "...> ", "fnl> "}, in.prompts)
	assert.Equal("(module main\n  (fn f ()\n    (return 1)))\n", stdout.String())
	assert.Empty(stderr.String())
	assert.Equal([]string{"fn f() {   return 1; }"}, in.history)
}

func TestReplReportsErrorsAndContinues(t *testing.T) {
	in := &fakeReader{lines: []string{
		"fn g() { x }",
		"",
		":tokens",
		"fn h() {}",
		":bogus",
	}}
	r, stdout, stderr := newTestRepl(in)
	require.NoError(t, r.loop())

	assert := assert.New(t)
	assert.Equal("[line 1] Error at 'x': Expected let, print_int, or return\n", stderr.String())
	assert.Contains(stdout.String(), "show tokens: true\n")
	assert.Contains(stdout.String(), "[Fn, Name(\"h\"), LeftParen, RightParen, LeftBrace, RightBrace, EndOfFile]\n")
	assert.Contains(stdout.String(), "(module main\n  (fn h ()))\n")
	assert.Contains(stdout.String(), "unknown command. Type :quit to exit.\n")
	assert.False(r.reporter.HadError())
	assert.Equal([]string{"fn h() {}"}, in.history)
}
