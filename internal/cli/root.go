// internal/cli/root.go
package palbench

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/palbench/internal/appconfig"
	"github.com/mwiater/palbench/internal/inputgen"
	"github.com/mwiater/palbench/internal/logging"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// ErrInvalidArgs marks malformed positional arguments.
var ErrInvalidArgs = errors.New("invalid arguments")

// app carries the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	noColor bool
	cfg     *appconfig.Config
}

// newRootCmd builds the command tree with its own viper instance.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	appconfig.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "palbench",
		Short: "palbench — micro-benchmark harness for permutation-palindrome predicates",
		Long: `palbench times candidate implementations of "is this string a permutation of a palindrome"
on generated inputs and reports min, max, average and 98th percentile in nanoseconds.`,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate),
		PersistentPreRunE: a.preRun,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "optional config file (JSON or YAML)")
	flags.BoolVar(&a.noColor, "noColor", false, "disable colored output")
	flags.Bool("debug", false, "log lifecycle events to stderr")
	flags.String("logFile", "", "path to the log file")
	flags.StringP("format", "f", "text", "report format: text, table, json or yaml")
	flags.StringP("output", "o", "", "write the report to this file instead of stdout")
	flags.Int("pinCpu", -1, "pin measurements to this CPU (-1 disables, Linux only)")
	flags.Bool("keepSamples", false, "include raw chronological samples in json/yaml reports")

	for _, name := range []string{"debug", "logFile", "format", "output", "pinCpu", "keepSamples"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newListCmd(),
		newShowCmd(a),
	)
	return rootCmd
}

// preRun loads the config file, materializes the merged configuration and starts logging.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	if err := a.ensureConfigLoaded(); err != nil {
		return err
	}

	cfg, err := appconfig.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = &cfg

	if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.LogEvent("[CLI] %s %s", cmd.CommandPath(), strings.Join(args, " "))
	return nil
}

// ensureConfigLoaded reads the config file when one was requested.
func (a *app) ensureConfigLoaded() error {
	if strings.TrimSpace(a.cfgFile) == "" {
		return nil
	}
	return appconfig.ReadFile(a.v, a.cfgFile)
}

// colored reports whether styled output is allowed on the current terminal.
func (a *app) colored() bool {
	return !a.noColor && !color.NoColor
}

// parseBenchArgs parses <input-size> <run-count> <generation-mode>.
func parseBenchArgs(args []string) (inputSize, runCount int, mode inputgen.Mode, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: expected <input-size> <run-count> <generation-mode>, got %d arguments", ErrInvalidArgs, len(args))
	}

	size, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 31)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: input-size %q: %v", ErrInvalidArgs, args[0], err)
	}
	runs, err := strconv.ParseUint(strings.TrimSpace(args[1]), 10, 31)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: run-count %q: %v", ErrInvalidArgs, args[1], err)
	}
	if runs == 0 {
		return 0, 0, 0, fmt.Errorf("%w: run-count must be at least 1", ErrInvalidArgs)
	}
	mode, err = inputgen.ParseMode(args[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return int(size), int(runs), mode, nil
}

// Execute runs the root command and exits non-zero on any error.
// This is called by main.main().
func Execute() {
	rootCmd := newRootCmd()

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
