package main

import (
	"fmt"

	"github.com/katalvlaran/turingbeaver/decide"
	"github.com/katalvlaran/turingbeaver/decide/bouncer"
	"github.com/katalvlaran/turingbeaver/decide/cycler"
	"github.com/katalvlaran/turingbeaver/decide/tcycler"
	"github.com/katalvlaran/turingbeaver/internal/numfmt"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/spf13/cobra"
)

var (
	decideSteps   string
	decidePeriod  string
	decideDegree  int
	decideXPeriod int
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Run a single decider against a rule and print its result",
}

var decideCyclerCmd = &cobra.Command{
	Use:   "cycler [TNF]",
	Short: "Run the exact cycler decider",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecideCycler,
}

var decideTCyclerCmd = &cobra.Command{
	Use:   "tcycler [TNF]",
	Short: "Run the translated-cycler decider",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecideTCycler,
}

var decideBouncerCmd = &cobra.Command{
	Use:   "bouncer [TNF]",
	Short: "Run the bouncer/bell decider",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecideBouncer,
}

func init() {
	for _, c := range []*cobra.Command{decideCyclerCmd, decideTCyclerCmd, decideBouncerCmd} {
		c.Flags().StringVar(&decideSteps, "steps", "1e6", "step budget, accepts scientific notation")
		c.Flags().StringVar(&decidePeriod, "period", "100", "initial period bound, accepts scientific notation")
	}
	decideBouncerCmd.Flags().IntVar(&decideDegree, "degree", 4, "max polynomial degree")
	decideBouncerCmd.Flags().IntVar(&decideXPeriod, "x-period", 8, "max spatial period")

	decideCmd.AddCommand(decideCyclerCmd, decideTCyclerCmd, decideBouncerCmd)
}

func decideBudget() (decide.Budget, error) {
	steps, err := numfmt.ParseUint(decideSteps)
	if err != nil {
		return decide.Budget{}, err
	}
	period, err := numfmt.ParseUint(decidePeriod)
	if err != nil {
		return decide.Budget{}, err
	}

	b := decide.DefaultBudget(steps)
	b.InitialPeriodBound = period

	return b, nil
}

func parseRuleArg(arg string) (rule.Rule, error) {
	r, err := rule.Parse(arg)
	if err != nil {
		return rule.Rule{}, fmt.Errorf("beaver decide: %w", err)
	}

	return r, nil
}

func runDecideCycler(cmd *cobra.Command, args []string) error {
	r, err := parseRuleArg(args[0])
	if err != nil {
		return err
	}
	budget, err := decideBudget()
	if err != nil {
		return err
	}

	res := cycler.Find(machine.New(r, logger()), budget)
	fmt.Fprintf(cmd.OutOrStdout(), "found=%t period=%d preperiod=%d offset=%d\n",
		res.Found, res.Period, res.Preperiod, res.Offset)

	return nil
}

func runDecideTCycler(cmd *cobra.Command, args []string) error {
	r, err := parseRuleArg(args[0])
	if err != nil {
		return err
	}
	budget, err := decideBudget()
	if err != nil {
		return err
	}

	res := tcycler.Find(machine.New(r, logger()), budget)
	fmt.Fprintf(cmd.OutOrStdout(), "found=%t period=%d preperiod=%d offset=%d\n",
		res.Found, res.Period, res.Preperiod, res.Offset)

	return nil
}

func runDecideBouncer(cmd *cobra.Command, args []string) error {
	r, err := parseRuleArg(args[0])
	if err != nil {
		return err
	}
	budget, err := decideBudget()
	if err != nil {
		return err
	}
	budget.MaxDegree = decideDegree
	budget.MaxXPeriod = decideXPeriod

	res, err := bouncer.Find(machine.New(r, logger()), budget)
	if err != nil {
		return fmt.Errorf("beaver decide bouncer: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "found=%t degree=%d xPeriod=%d start=%d side=%s\n",
		res.Found, res.Degree, res.XPeriod, res.Start, res.Side)

	return nil
}
