package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/weathervault/pkg/station"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Search and inspect ISD stations",
}

var stationsSearchFlags struct {
	name        string
	country     string
	countryCode string
	state       string
	latMin      float64
	latMax      float64
	lonMin      float64
	lonMax      float64
	recent      bool
}

var stationsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the station history",
	Long:  `Search stations by name, country, state, or coordinate box.`,
	RunE:  runStationsSearch,
}

var stationsYearsCmd = &cobra.Command{
	Use:   "years <station-id>",
	Short: "List the years with data for a station",
	Args:  cobra.ExactArgs(1),
	RunE:  runStationsYears,
}

func init() {
	rootCmd.AddCommand(stationsCmd)
	stationsCmd.AddCommand(stationsSearchCmd)
	stationsCmd.AddCommand(stationsYearsCmd)

	f := stationsSearchCmd.Flags()
	f.StringVar(&stationsSearchFlags.name, "name", "", "station name substring")
	f.StringVar(&stationsSearchFlags.country, "country", "", "country name substring")
	f.StringVar(&stationsSearchFlags.countryCode, "country-code", "", "ISO 3166-1 alpha-2 code")
	f.StringVar(&stationsSearchFlags.state, "state", "", "US state code")
	f.Float64Var(&stationsSearchFlags.latMin, "lat-min", 0, "minimum latitude")
	f.Float64Var(&stationsSearchFlags.latMax, "lat-max", 0, "maximum latitude")
	f.Float64Var(&stationsSearchFlags.lonMin, "lon-min", 0, "minimum longitude")
	f.Float64Var(&stationsSearchFlags.lonMax, "lon-max", 0, "maximum longitude")
	f.BoolVar(&stationsSearchFlags.recent, "recent", false, "only stations reporting since last year")
}

func runStationsSearch(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	query := station.Query{
		Name:          stationsSearchFlags.name,
		Country:       stationsSearchFlags.country,
		CountryCode:   stationsSearchFlags.countryCode,
		State:         stationsSearchFlags.state,
		HasRecentData: stationsSearchFlags.recent,
	}
	if cmd.Flags().Changed("lat-min") || cmd.Flags().Changed("lat-max") {
		query.LatRange = &station.Range{Min: stationsSearchFlags.latMin, Max: stationsSearchFlags.latMax}
	}
	if cmd.Flags().Changed("lon-min") || cmd.Flags().Changed("lon-max") {
		query.LonRange = &station.Range{Min: stationsSearchFlags.lonMin, Max: stationsSearchFlags.lonMax}
	}

	stations, err := a.catalog.Search(cmd.Context(), query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, st := range stations {
		parts := []string{st.ID, st.Name}
		if st.CountryCode != "" {
			loc := st.CountryCode
			if st.State != "" {
				loc += "." + st.State
			}
			parts = append(parts, loc)
		}
		if !st.End.IsZero() {
			parts = append(parts, fmt.Sprintf("%d-%d", st.Begin.Year(), st.End.Year()))
		}
		fmt.Fprintln(out, strings.Join(parts, "  "))
	}
	fmt.Fprintf(out, "%d stations\n", len(stations))
	return nil
}

func runStationsYears(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	years, err := a.catalog.YearsFor(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(years) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no data inventory for %s\n", args[0])
		return nil
	}
	for _, y := range years {
		fmt.Fprintln(cmd.OutOrStdout(), y)
	}
	return nil
}
