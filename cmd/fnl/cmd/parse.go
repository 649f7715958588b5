package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/letung3105/fnl/internal/fnl"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		format     string
		showTokens bool
		watch      bool
	)
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree of a source file",
		Long: `Parses the file ("-" reads standard input) and prints the module. Parsing
stops at the first error, which is reported together with its line.

With --watch the file is parsed again every time it changes, until
interrupted.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format
			}
			if cmd.Flags().Changed("tokens") {
				a.cfg.Output.ShowTokens = showTokens
			}
			if _, err := fnl.ParseFormat(a.cfg.Output.Format); err != nil {
				return &exitError{code: exitUsage, err: err}
			}

			if !watch {
				return a.parseFile(cmd, args[0])
			}
			if args[0] == "-" {
				return &exitError{code: exitUsage, err: fmt.Errorf("cannot watch standard input")}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.watchFile(ctx, cmd, args[0])
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: sexpr, yaml or json")
	cmd.Flags().BoolVarP(&showTokens, "tokens", "t", false, "print the tokens before the module")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "parse again whenever the file changes")
	return cmd
}

// parseFile reads, parses and prints one file.
func (a *app) parseFile(cmd *cobra.Command, path string) error {
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	module, tokens, err := a.compile(source, newErrorReporter(cmd, a.cfg.Output.NoColor))
	if a.cfg.Output.ShowTokens {
		fmt.Fprintln(cmd.OutOrStdout(), fnl.FormatTokens(tokens))
	}
	if err != nil {
		return err
	}
	return printModule(cmd, a, module)
}

func (a *app) watchFile(ctx context.Context, cmd *cobra.Command, path string) error {
	w, err := newFileWatcher(path, a.cfg.Watch.Debounce.Duration, a.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	parse := func() { a.reparse(cmd, path) }
	parse()
	return w.Run(ctx, parse)
}

// reparse parses path for the watch loop, which keeps running on failure.
func (a *app) reparse(cmd *cobra.Command, path string) {
	err := a.parseFile(cmd, path)
	if err == nil {
		return
	}
	// parse errors went through the reporter
	var exitErr *exitError
	if errors.As(err, &exitErr) && exitErr.silent {
		a.logger.Debug("parse failed", "file", path, "error", err)
		return
	}
	a.logger.Error("Failed to parse file", "file", path, "error", err)
}
