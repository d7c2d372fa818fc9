package main

import (
	"cmp"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-opcount/opcount"
	"github.com/ajroetker/go-opcount/opcount/contrib/scenario"
	"github.com/ajroetker/go-opcount/opcount/contrib/sort"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		n    int
		mode string
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort one generated array with both engines and print the counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("--n must be >= 0, got %d", n)
			}
			s, err := scenario.Parse(mode)
			if err != nil {
				return err
			}

			var (
				genSrc   scenario.Source
				pivotSrc sort.Source
			)
			if cmd.Flags().Changed("seed") {
				rng := rand.New(rand.NewPCG(seed, 0))
				genSrc, pivotSrc = rng, rng
			}

			base, err := scenario.GenerateRand(n, s, genSrc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Input:", base)

			var mc opcount.Counter
			start := time.Now()
			merged := sort.MergeSort(base, &mc)
			printSort(out, "MergeSort", merged, time.Since(start), mc)

			quick := slices.Clone(base)
			var qc opcount.Counter
			start = time.Now()
			sort.QuickSortFunc(quick, &qc, pivotSrc, 0, len(quick)-1, cmp.Compare[int])
			printSort(out, "QuickSort", quick, time.Since(start), qc)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 20, "Array size")
	cmd.Flags().StringVarP(&mode, "mode", "m", "random", "Scenario: random, sorted, reversed")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output")
	return cmd
}

func printSort(w io.Writer, name string, data []int, elapsed time.Duration, c opcount.Counter) {
	fmt.Fprintf(w, "\n[%s]\n", name)
	fmt.Fprintln(w, "Result:", data)
	fmt.Fprintf(w, "Time (s): %.9f\n", elapsed.Seconds())
	fmt.Fprintln(w, "Comparisons:", c.Comparisons)
	fmt.Fprintln(w, "Assignments:", c.Assignments)
	fmt.Fprintln(w, "Energy proxy:", c.EnergyProxy())
}
