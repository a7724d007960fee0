package cmd

import (
	"fmt"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose  bool
	logLevel string
}

func (o *globalOptions) logger(cmd *cobra.Command) calculation.Logger {
	level := calculation.ParseLogLevel(o.logLevel)
	if o.verbose {
		level = calculation.LevelDebug
	}
	return calculation.NewStdLogger(cmd.ErrOrStderr(), level)
}

func (o *globalOptions) engine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(o.logger(cmd))
	engine.Debug = o.verbose
	return engine
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "compound-calc",
		Short: "Compound interest projection and inversion calculator",
		Long: `compound-calc projects an investment with periodic contributions and solves for
whichever input is unknown.

Modes:
  final_amount          - project the balance at the end of the term
  interest_rate         - annual rate needed to reach a target
  initial_capital       - starting capital needed to reach a target
  investment_term       - years needed to reach a target
  monthly_contribution  - monthly contribution needed to reach a target

Reinvestment periods: monthly, quarterly, semiannual, annual, none (simple interest).`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every calculation at debug level")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(
		newCalcCmd(opts),
		newRunCmd(opts),
		newCompareCmd(opts),
		newSweepCmd(opts),
		newServeCmd(opts),
		newExampleCmd(),
		newValidateCmd(),
		newFormatsCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", msg, err)
}
