package cmd

import (
	"fmt"
	"strings"

	"github.com/rpgo/investment-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the report formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %-14s .%s\n", name, output.FileExtension(name))
			}
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintln(out, "Use 'all' with --output-dir to write every format.")
		},
	}
}
