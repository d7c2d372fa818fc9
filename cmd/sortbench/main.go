// Command sortbench measures the operation counts of the instrumented merge
// sort and quicksort engines across input sizes and scenarios.
//
// Usage:
//
//	sortbench run                                  # default sweep, table output
//	sortbench run --sizes 1000,2000 --scenarios random --repetitions 10 --format csv
//	sortbench run --save --db data/sortbench.db    # keep results for later
//	sortbench sort --n 20 --mode random            # single demo sort
//	sortbench history --db data/sortbench.db
//	sortbench show <run-id> --format json
//	sortbench config                               # print effective configuration
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-opcount/internal/config"
)

// app carries state shared by subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A nil logger is built from the loaded
// configuration.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Operation-count benchmarks for merge sort and quicksort",
		Long: `sortbench runs the instrumented merge sort and randomized quicksort engines
over a sweep of input sizes and scenarios (random, sorted, reversed), and
reports average comparisons, assignments and their sum, the energy proxy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.logger == nil {
				logger, err := buildLogger(cfg.Logging, a.verbose)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "sortbench.yaml", "Path to the YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newRunCmd(a),
		newSortCmd(a),
		newHistoryCmd(a),
		newShowCmd(a),
		newConfigCmd(a),
	)
	return root
}

func buildLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = level
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if lc.Format == "console" {
		zcfg.Encoding = "console"
	}
	return zcfg.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
