// Package main provides the entry point for the skillgap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "skillgap",
		Short:         "Skill gap analyzer for job descriptions",
		Long:          "skillgap compares a job description against a candidate's skills, supplied directly or extracted from resume and profile text, and reports the frequently mentioned terms the candidate is missing.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
