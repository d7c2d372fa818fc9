package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-opcount/internal/report"
	"github.com/ajroetker/go-opcount/internal/store"
)

func openStore(a *app, cmd *cobra.Command, dbPath string) (*store.Store, error) {
	path := a.cfg.Store.Path
	if cmd.Flags().Changed("db") {
		path = dbPath
	}
	return store.Open(cmd.Context(), path)
}

func newHistoryCmd(a *app) *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(a, cmd, dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs stored.")
				return nil
			}

			rows := lo.Map(runs, func(r store.RunSummary, _ int) []string {
				return []string{
					r.ID,
					r.StartedAt.Format(time.RFC3339),
					strconv.Itoa(r.Repetitions),
					strconv.Itoa(r.Results),
					r.Host.GOOS + "/" + r.Host.GOARCH,
				}
			})
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("run_id", "started_at", "repetitions", "results", "host").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 for all)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var (
		dbPath string
		format string
	)

	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print the results of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(a, cmd, dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			rep, err := s.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			return report.Render(cmd.OutOrStdout(), format, rep)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: table, json, csv, yaml")
	return cmd
}
