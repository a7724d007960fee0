package cmd

import (
	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/spf13/cobra"
)

func newSweepCmd(opts *globalOptions) *cobra.Command {
	var (
		params   paramFlags
		report   reportFlags
		field    string
		from, to float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Vary one input over a range and report each result",
		Example: `  compound-calc sweep --field rate --from 2 --to 10 --steps 5
  compound-calc sweep --mode contribution --field target --from 50000 --to 100000 --steps 6 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params.parameters()
			if err != nil {
				return err
			}
			f, err := calculation.ParseSweepField(field)
			if err != nil {
				return err
			}
			analysis, err := opts.engine(cmd).Sweep(p, f, from, to, steps)
			if err != nil {
				return err
			}
			return report.emit(cmd, analysis.ToComparison())
		},
	}
	addParamFlags(cmd, &params)
	addReportFlags(cmd, &report, "console-lite")
	cmd.Flags().StringVar(&field, "field", "rate", "Input to vary: rate, capital, term, contribution, target")
	cmd.Flags().Float64Var(&from, "from", 0, "First value of the range")
	cmd.Flags().Float64Var(&to, "to", 10, "Last value of the range")
	cmd.Flags().IntVar(&steps, "steps", 5, "Number of evenly spaced values, including both ends")
	return cmd
}
