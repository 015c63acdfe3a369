// internal/cli/run.go
package palbench

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/palbench/internal/benchmark"
	"github.com/mwiater/palbench/internal/palindrome"
	"github.com/mwiater/palbench/internal/report"
)

// newRunCmd implements 'run', which benchmarks a single candidate.
func newRunCmd(a *app) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <input-size> <run-count> <generation-mode>",
		Short: "Benchmark one candidate",
		Long: `Benchmark one candidate. generation-mode is one of random, spread or homogenous.
Prints min, max, average and 98th percentile time in nanoseconds.`,
		Example: "  palbench run 1024 10000 random\n  palbench run 4096 1000 spread --candidate bitset -o results.txt",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputSize, runCount, mode, err := parseBenchArgs(args)
			if err != nil {
				return err
			}
			candidate, err := palindrome.Lookup(a.cfg.Candidate)
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			runner, err := benchmark.NewRunner(benchmark.Options{
				InputSize:   inputSize,
				RunCount:    runCount,
				Mode:        mode,
				PinCPU:      a.cfg.PinCPU,
				KeepSamples: a.cfg.KeepSamples,
			})
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			result, err := runner.Measure(cmd.Context(), candidate)
			if err != nil {
				return err
			}
			return a.deliver(cmd, report.New([]benchmark.Result{result}), format)
		},
	}

	runCmd.Flags().StringP("candidate", "a", palindrome.DefaultCandidate, "candidate to benchmark (see 'palbench list candidates')")
	_ = a.v.BindPFlag("candidate", runCmd.Flags().Lookup("candidate"))
	return runCmd
}

// deliver renders rep and writes it to the configured destination, falling back to stderr.
func (a *app) deliver(cmd *cobra.Command, rep report.Report, format report.Format) error {
	toTerminal := a.cfg.Output == ""
	data, err := report.Bytes(rep, format, a.colored() && toTerminal)
	if err != nil {
		return err
	}
	return report.Deliver(data, a.cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr(), a.colored())
}
