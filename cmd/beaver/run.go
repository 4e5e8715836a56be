package main

import (
	"fmt"

	"github.com/katalvlaran/turingbeaver/internal/numfmt"
	"github.com/katalvlaran/turingbeaver/machine"
	"github.com/katalvlaran/turingbeaver/rule"
	"github.com/spf13/cobra"
)

var (
	runSteps string
	runKnown string
)

var runCmd = &cobra.Command{
	Use:   "run [TNF]",
	Short: "Step a machine and report its halt/step/head/tape-size summary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSteps, "steps", "1e6", "step budget, accepts scientific notation")
	runCmd.Flags().StringVar(&runKnown, "known", "", "run a named machine from rule.Known instead of a positional TNF string")
}

func runRun(cmd *cobra.Command, args []string) error {
	code, err := resolveCode(runKnown, args)
	if err != nil {
		return err
	}

	r, err := rule.Parse(code)
	if err != nil {
		return fmt.Errorf("beaver run: %w", err)
	}

	steps, err := numfmt.ParseUint(runSteps)
	if err != nil {
		return fmt.Errorf("beaver run: %w", err)
	}

	m := machine.New(r, logger())
	m.Seek(steps)

	tp := m.Tape()
	ones := countOnes(m)
	fmt.Fprintf(cmd.OutOrStdout(), "halted=%t steps=%d head=%d touched=%d ones=%d\n",
		m.Halted(), m.Steps(), tp.Head(), tp.RightEdge()-tp.LeftEdge()+1, ones)

	return nil
}

func countOnes(m *machine.Machine) int {
	tp := m.Tape()
	seg := tp.Segment(tp.LeftEdge(), tp.RightEdge())
	count := 0
	for _, sym := range seg.Data {
		if sym != 0 {
			count++
		}
	}

	return count
}

// resolveCode picks the TNF string to parse: rule.Known[name] if a --known
// name was given, otherwise the sole positional argument.
func resolveCode(known string, args []string) (string, error) {
	if known != "" {
		code, ok := rule.Known[known]
		if !ok {
			return "", fmt.Errorf("beaver: unknown machine %q", known)
		}

		return code, nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("beaver: expected a TNF string or --known NAME")
	}

	return args[0], nil
}
