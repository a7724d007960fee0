package cmd

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Check a scenario file without calculating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				printError(cmd, "validation failed", err)
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
			for _, s := range cfg.Scenarios {
				fmt.Fprintf(out, "  - %s [%s, %s]\n", s.Name, s.Parameters.Mode, s.Parameters.ReinvestmentPeriod)
			}
			return nil
		},
	}
}
