package cmd

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example scenario file",
		Long:  "Write an example scenario file covering every calculation mode. A .toml name writes TOML, anything else YAML.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_scenarios.yaml"
			if len(args) > 0 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				printError(cmd, "could not write example", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenarios written to %s\n", filename)
			return nil
		},
	}
}
