package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-opcount/internal/report"
	"github.com/ajroetker/go-opcount/internal/store"
	"github.com/ajroetker/go-opcount/opcount/contrib/bench"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		sizes       []int
		scenarios   []string
		repetitions int
		workers     int
		parallel    int
		seed        uint64
		format      string
		dbPath      string
		save        bool
		verify      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the size x scenario sweep and print averaged results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("sizes") {
				cfg.Experiment.Sizes = sizes
			}
			if flags.Changed("scenarios") {
				cfg.Experiment.Scenarios = scenarios
			}
			if flags.Changed("repetitions") {
				cfg.Experiment.Repetitions = repetitions
			}
			if flags.Changed("workers") {
				cfg.Experiment.Workers = workers
			}
			if flags.Changed("parallel") {
				cfg.Experiment.Parallel = parallel
			}
			if flags.Changed("seed") {
				cfg.Experiment.Seed = &seed
			}
			if flags.Changed("verify") {
				cfg.Experiment.Verify = verify
			}
			if flags.Changed("format") {
				cfg.Output.Format = format
			}
			if flags.Changed("db") {
				cfg.Store.Path = dbPath
				cfg.Store.Enabled = true
			}
			if flags.Changed("save") {
				cfg.Store.Enabled = save
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts, err := cfg.BenchOptions()
			if err != nil {
				return err
			}
			opts.Logger = a.logger

			runner, err := bench.NewRunner(opts)
			if err != nil {
				return err
			}
			defer runner.Close()

			rep := report.Report{
				StartedAt:   time.Now().UTC(),
				Repetitions: opts.Repetitions,
				Host:        bench.HostInfo(),
			}
			a.logger.Info("sweep started",
				zap.Ints("sizes", runner.Options().Sizes),
				zap.Int("repetitions", opts.Repetitions),
				zap.Int("workers", runner.Options().Workers),
				zap.Int("parallel", runner.Options().Parallel),
			)

			rep.Results, err = runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			if cfg.Store.Enabled {
				s, err := store.Open(cmd.Context(), cfg.Store.Path)
				if err != nil {
					return err
				}
				defer s.Close()
				id, err := s.SaveRun(cmd.Context(), rep)
				if err != nil {
					return err
				}
				rep.RunID = id
				a.logger.Info("run saved", zap.String("run_id", id), zap.String("db", cfg.Store.Path))
			}

			return report.Render(cmd.OutOrStdout(), cfg.Output.Format, rep)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&sizes, "sizes", nil, "Input sizes (default from config: 1000,5000,10000)")
	f.StringSliceVar(&scenarios, "scenarios", nil, "Scenarios: random, sorted, reversed")
	f.IntVarP(&repetitions, "repetitions", "r", 0, "Repetitions per cell")
	f.IntVar(&workers, "workers", 0, "Concurrent trials per cell")
	f.IntVar(&parallel, "parallel", 0, "Concurrent cells")
	f.Uint64Var(&seed, "seed", 0, "Seed for reproducible arrays and pivots")
	f.StringVarP(&format, "format", "f", "", fmt.Sprintf("Output format %v", []string{"table", "json", "csv", "yaml"}))
	f.StringVar(&dbPath, "db", "", "SQLite database to save the run to (implies --save)")
	f.BoolVar(&save, "save", false, "Save the run to the configured database")
	f.BoolVar(&verify, "verify", false, "Check every sort output against its input")
	return cmd
}
