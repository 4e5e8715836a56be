// Command beaver is a research-toolkit CLI over the rule/tape/machine/
// decide/enumerate packages: step a machine to a target step count, run a
// single decider against a rule, or enumerate a whole (N, S) tree.
package main

import (
	"github.com/katalvlaran/turingbeaver/internal/applog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "beaver",
	Short: "A toolkit for experimental analysis and classification of small Turing machines",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(runCmd, decideCmd, enumerateCmd)
}

func logger() *applog.Logger {
	return applog.New(verbose, nil)
}
