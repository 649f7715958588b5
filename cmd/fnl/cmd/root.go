package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/letung3105/fnl/internal/config"
	"github.com/letung3105/fnl/internal/fnl"
)

// Exit statuses, following sysexits.h.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64
	exitDataErr = 65
	exitConfig  = 78
)

// exitError carries the process exit status for an error. Silent errors have
// already been shown to the user.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// app holds what every subcommand needs once flags and config are resolved.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the CLI with os.Args and returns the exit status.
func Execute() int {
	return run(NewRootCmd(), os.Stderr)
}

func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if !exitErr.silent {
			fmt.Fprintf(stderr, "Error: %v\n", exitErr.err)
		}
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailure
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fnl",
		Short: "Lexer and parser for the fnl language",
		Long: `fnl turns source code of a tiny function language into a syntax tree.

Commands:
  sample  - run the built-in sample program through the front-end
  tokens  - print the tokens of a source file
  parse   - print the syntax tree of a source file
  repl    - parse input line by line`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitError{code: exitUsage, err: err}
	})

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $FNL_CONFIG or ./fnl.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newSampleCmd(a),
		newTokensCmd(a),
		newParseCmd(a),
		newReplCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}
	if a.noColor {
		a.cfg.Output.NoColor = true
	}

	level, _ := a.cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	return nil
}

// compile runs the front-end over source and reports a parse error through
// the reporter. The returned error is ready to be returned from RunE.
func (a *app) compile(source string, reporter fnl.Reporter) (*fnl.Module, []*fnl.Token, error) {
	tokens := fnl.NewScanner([]rune(source)).WithLogger(a.logger).Scan()
	a.logger.Debug("lexed source", "tokens", len(tokens))

	module, err := fnl.Parse(tokens)
	if err != nil {
		reporter.Report(err)
		return nil, tokens, &exitError{code: exitDataErr, err: err, silent: true}
	}
	a.logger.Debug("parsed module", "functions", len(module.Functions))
	return module, tokens, nil
}

// exactArgs is cobra.ExactArgs with the usage exit status.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &exitError{code: exitUsage, err: err}
		}
		return nil
	}
}

// readSource reads the named file, or standard input for "-".
func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		bytes, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(bytes), nil
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(bytes), nil
}
