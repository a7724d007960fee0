package cmd

import (
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var report reportFlags
	cmd := &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Calculate every scenario in a YAML, JSON or TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			results, err := opts.engine(cmd).RunScenarios(cfg)
			if err != nil {
				return err
			}
			return report.emit(cmd, results)
		},
	}
	addReportFlags(cmd, &report, "console")
	return cmd
}
