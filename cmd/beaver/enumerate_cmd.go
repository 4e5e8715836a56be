package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/turingbeaver/config"
	"github.com/katalvlaran/turingbeaver/enumerate"
	"github.com/katalvlaran/turingbeaver/internal/numfmt"
	"github.com/spf13/cobra"
)

var (
	enumerateSteps  string
	enumerateOut    string
	enumerateConfig string
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate N S",
	Short: "Walk the TNF tree for an (N, S) shape and print the bucket tallies",
	Args:  cobra.ExactArgs(2),
	RunE:  runEnumerate,
}

func init() {
	enumerateCmd.Flags().StringVar(&enumerateSteps, "steps", "1e6", "per-candidate step budget, accepts scientific notation")
	enumerateCmd.Flags().StringVar(&enumerateOut, "out", "out", "output directory root")
	enumerateCmd.Flags().StringVar(&enumerateConfig, "config", "", "optional print-filter YAML file")
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("beaver enumerate: invalid N %q: %w", args[0], err)
	}
	s, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("beaver enumerate: invalid S %q: %w", args[1], err)
	}

	steps, err := numfmt.ParseUint(enumerateSteps)
	if err != nil {
		return fmt.Errorf("beaver enumerate: %w", err)
	}

	filters := config.Default()
	if enumerateConfig != "" {
		filters, err = config.Load(enumerateConfig)
		if err != nil {
			return fmt.Errorf("beaver enumerate: %w", err)
		}
	}

	summary, err := enumerate.Run(
		context.Background(), n, s,
		enumerate.WithMaxSteps(steps),
		enumerate.WithOutputDir(enumerateOut),
		enumerate.WithPrintFilterTable(filters),
		enumerate.WithLogger(logger()),
	)
	if err != nil {
		return fmt.Errorf("beaver enumerate: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "visited=%d pruned=%d halted=%d\n", summary.Visited, summary.Pruned, summary.Halted)
	for _, b := range []enumerate.Bucket{
		enumerate.CheapTCycler, enumerate.Cycler, enumerate.MediumTCycler,
		enumerate.Bouncer, enumerate.Counter, enumerate.HeavyTCycler, enumerate.Unclassified,
	} {
		fmt.Fprintf(out, "%s=%d\n", b, summary.Counts[b])
	}

	return nil
}
