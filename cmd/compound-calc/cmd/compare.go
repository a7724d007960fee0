package cmd

import "github.com/spf13/cobra"

func newCompareCmd(opts *globalOptions) *cobra.Command {
	var (
		params paramFlags
		report reportFlags
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run one parameter set under every reinvestment period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params.parameters()
			if err != nil {
				return err
			}
			results, err := opts.engine(cmd).CompareReinvestmentPeriods(p)
			if err != nil {
				return err
			}
			return report.emit(cmd, results)
		},
	}
	addParamFlags(cmd, &params)
	addReportFlags(cmd, &report, "console-lite")
	return cmd
}
