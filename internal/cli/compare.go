// internal/cli/compare.go
package palbench

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/palbench/internal/benchmark"
	"github.com/mwiater/palbench/internal/palindrome"
	"github.com/mwiater/palbench/internal/report"
)

// newCompareCmd implements 'compare', which benchmarks several candidates back to back.
func newCompareCmd(a *app) *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare <input-size> <run-count> <generation-mode>",
		Short: "Benchmark every candidate and compare them",
		Long: `Benchmark several candidates one after another under identical settings.
Each candidate is measured on its own freshly generated inputs.`,
		Example: "  palbench compare 1024 10000 random --format table\n  palbench compare 64 1000 homogenous --candidates array,bitset",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputSize, runCount, mode, err := parseBenchArgs(args)
			if err != nil {
				return err
			}
			candidates, err := palindrome.Resolve(a.cfg.Candidates)
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
			if a.cfg.Progress {
				runner.OnProgress(report.NewProgress(cmd.ErrOrStderr()).Update)
			}
			cmd.SilenceUsage = true

			results, err := runner.Compare(cmd.Context(), candidates)
			if err != nil {
				return err
			}
			return a.deliver(cmd, report.New(results), format)
		},
	}

	compareCmd.Flags().StringSlice("candidates", nil, "comma-separated candidates to compare (default all)")
	compareCmd.Flags().Bool("progress", false, "draw a progress bar on stderr between candidates")
	_ = a.v.BindPFlag("candidates", compareCmd.Flags().Lookup("candidates"))
	_ = a.v.BindPFlag("progress", compareCmd.Flags().Lookup("progress"))
	return compareCmd
}
