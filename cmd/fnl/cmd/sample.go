package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letung3105/fnl/internal/fnl"
)

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Run the built-in sample program through the front-end",
		Long: `Prints the built-in sample program, the tokens the scanner produces for
it and the module the parser builds from them.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyles(out, a.cfg.Output.NoColor)
			reporter := newErrorReporter(cmd, a.cfg.Output.NoColor)

			module, tokens, err := a.compile(fnl.SampleSource, reporter)

			fmt.Fprintln(out, st.heading("Source"))
			fmt.Fprintln(out, fnl.SampleSource)
			fmt.Fprintln(out)
			fmt.Fprintln(out, st.heading("Tokens"))
			fmt.Fprintln(out, fnl.FormatTokens(tokens))
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, st.heading("Module"))
			return printModule(cmd, a, module)
		},
	}
}

// printModule writes the module in the configured output format.
func printModule(cmd *cobra.Command, a *app, module *fnl.Module) error {
	format, err := fnl.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}
	text, err := fnl.Dump(module, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
