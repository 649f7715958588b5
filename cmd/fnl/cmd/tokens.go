package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letung3105/fnl/internal/fnl"
)

func newTokensCmd(a *app) *cobra.Command {
	var perLine bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a source file",
		Long: `Scans the file ("-" reads standard input) and prints its tokens. The
scanner never fails; characters that start no token are skipped.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			tokens := fnl.NewScanner([]rune(source)).WithLogger(a.logger).Scan()

			out := cmd.OutOrStdout()
			if !perLine {
				fmt.Fprintln(out, fnl.FormatTokens(tokens))
				return nil
			}
			st := newStyles(out, a.cfg.Output.NoColor)
			for _, tok := range tokens {
				fmt.Fprintf(out, "%s %s\n", st.muted(fmt.Sprintf("%4d", tok.Line)), tok)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&perLine, "lines", "l", false, "print one token per line with its line number")
	return cmd
}
