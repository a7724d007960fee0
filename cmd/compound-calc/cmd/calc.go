package cmd

import (
	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/spf13/cobra"
)

func newCalcCmd(opts *globalOptions) *cobra.Command {
	var (
		params paramFlags
		report reportFlags
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Project one parameter set or solve for its unknown input",
		Example: `  compound-calc calc --capital 10000 --rate 5 --term 10 --contribution 500
  compound-calc calc --mode rate --target 50000 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params.parameters()
			if err != nil {
				return err
			}
			result, err := opts.engine(cmd).Calculate(p)
			if err != nil {
				return err
			}
			return report.emit(cmd, &domain.ScenarioComparison{
				Scenarios: []domain.ScenarioSummary{{
					Name:   "Calculation",
					Mode:   p.Mode,
					Result: result,
				}},
				Assumptions: calculation.Assumptions(),
			})
		},
	}
	addParamFlags(cmd, &params)
	addReportFlags(cmd, &report, "console")
	return cmd
}
