package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/letung3105/fnl/internal/fnl"
)

// lineReader is the part of liner.State the REPL needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse input line by line",
		Long: `Starts an interactive prompt. Every entry is parsed and the resulting module
is printed. Input that ends in the middle of a declaration continues on the
next line.

Commands:
  :tokens  toggle printing tokens
  :quit    leave the prompt`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			histPath := a.cfg.Repl.HistoryFile
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				} else {
					a.logger.Warn("Failed to write history", "file", histPath, "error", err)
				}
			}()

			return newRepl(a, cmd, ln).loop()
		},
	}
}

type repl struct {
	app        *app
	cmd        *cobra.Command
	in         lineReader
	out        io.Writer
	reporter   fnl.Reporter
	showTokens bool
}

func newRepl(a *app, cmd *cobra.Command, in lineReader) *repl {
	return &repl{
		app:        a,
		cmd:        cmd,
		in:         in,
		out:        cmd.OutOrStdout(),
		reporter:   newErrorReporter(cmd, a.cfg.Output.NoColor),
		showTokens: a.cfg.Output.ShowTokens,
	}
}

func (r *repl) loop() error {
	for {
		src, ok := r.read()
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}

		code := strings.TrimSpace(src)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			if quit := r.command(strings.ToLower(code)); quit {
				return nil
			}
			continue
		}

		module, tokens, err := r.app.compile(src, r.reporter)
		if r.showTokens {
			fmt.Fprintln(r.out, fnl.FormatTokens(tokens))
		}
		if err != nil {
			r.reporter.Reset()
			continue
		}
		if err := printModule(r.cmd, r.app, module); err != nil {
			return err
		}
		r.in.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

func (r *repl) command(name string) (quit bool) {
	switch name {
	case ":quit", ":q":
		return true
	case ":tokens":
		r.showTokens = !r.showTokens
		fmt.Fprintf(r.out, "show tokens: %t\n", r.showTokens)
	default:
		fmt.Fprintln(r.out, "unknown command. Type :quit to exit.")
	}
	return false
}

// read collects lines until they form input the parser either accepts or
// rejects before reaching the end. It returns false once input is closed.
func (r *repl) read() (string, bool) {
	var b strings.Builder
	cfg := r.app.cfg.Repl

	for {
		prompt := cfg.Prompt
		if b.Len() > 0 {
			prompt = cfg.ContinuePrompt
		}
		line, err := r.in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			r.app.logger.Error("Failed to read input", "error", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		_, err = fnl.Parse(fnl.Lex(src))
		var perr *fnl.ParseError
		if errors.As(err, &perr) && perr.AtEnd() {
			continue
		}
		return src, true
	}
}
