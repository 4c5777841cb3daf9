// Package main provides portfolioctl, the maintenance CLI for the portfolio site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "portfolioctl",
	Short:         "Portfolio maintenance tool",
	Long:          "portfolioctl validates the portfolio dataset, renders the resume offline, seeds the Postgres snapshot store and hashes the owner password.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
