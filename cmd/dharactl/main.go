// Command dharactl is the operator CLI for inspecting calendar data directly
// in the database. It is read-only.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dharactl",
		Short: "Inspect professional calendars and occupancy",
	}

	rootCmd.AddCommand(occupancyCmd())
	rootCmd.AddCommand(lintCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
