// Package main provides the entry point for the shortlist prediction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shortlist_agent",
	Short: "Shortlist probability prediction engine",
	Long:  "Predicts a calibrated shortlist probability for a candidate profile against a job posting and simulates hypothetical profile changes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
