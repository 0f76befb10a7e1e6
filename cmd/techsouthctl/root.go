package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "techsouthctl",
	Short: "TechSouth content platform server and tooling",
	Long: `techsouthctl runs the TechSouth content platform server and its
supporting tooling: database migrations, reference data seeding and
one-off content generation.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
