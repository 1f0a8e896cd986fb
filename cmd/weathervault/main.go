package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weathervault",
	Short: "Weathervault - ISD weather observation retrieval",
	Long: `Weathervault retrieves, decodes, and assembles hourly surface weather
observations from the NOAA Integrated Surface Database, as an HTTP
service or directly from the command line.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
