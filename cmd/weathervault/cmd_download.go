package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var downloadFlags struct {
	years     []int
	noBuffers bool
}

var downloadCmd = &cobra.Command{
	Use:   "download <station-id>",
	Short: "Prefetch year files into the local cache",
	Long: `Download the raw year files for a station into the cache directory so
later retrievals work offline. Each requested year also pulls its
adjacent years, which local-time retrieval needs at year boundaries.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().IntSliceVar(&downloadFlags.years, "years", nil, "years to download (default: all available)")
	downloadCmd.Flags().BoolVar(&downloadFlags.noBuffers, "no-buffers", false, "skip the adjacent buffer years")
}

func runDownload(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	stationID := args[0]
	ctx := cmd.Context()

	years := downloadFlags.years
	if len(years) == 0 {
		years, err = a.catalog.YearsFor(ctx, stationID)
		if err != nil {
			return err
		}
		if len(years) == 0 {
			return fmt.Errorf("no data inventory for %s", stationID)
		}
	}

	plan := make(map[int]bool, len(years)*3)
	for _, y := range years {
		plan[y] = true
		if !downloadFlags.noBuffers {
			plan[y-1] = true
			plan[y+1] = true
		}
	}

	out := cmd.OutOrStdout()
	downloaded := 0
	for year := minKey(plan); year <= maxKey(plan); year++ {
		if !plan[year] {
			continue
		}
		data, err := a.source.Fetch(ctx, stationID, year)
		if err != nil {
			return err
		}
		if data == nil {
			fmt.Fprintf(out, "%s %d: no data\n", stationID, year)
			continue
		}
		fmt.Fprintf(out, "%s %d: %d bytes\n", stationID, year, len(data))
		downloaded++
	}
	fmt.Fprintf(out, "%d year files available locally\n", downloaded)
	return nil
}

func minKey(m map[int]bool) int {
	first := true
	min := 0
	for k := range m {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

func maxKey(m map[int]bool) int {
	first := true
	max := 0
	for k := range m {
		if first || k > max {
			max = k
			first = false
		}
	}
	return max
}
