package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/weathervault/pkg/station"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List countries with ISD stations",
	Long:  `List the ISO country codes and names used by station search.`,
	RunE:  runCountries,
}

func init() {
	rootCmd.AddCommand(countriesCmd)
}

func runCountries(cmd *cobra.Command, _ []string) error {
	for _, c := range station.Countries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", c.Code, c.Name)
	}
	return nil
}
