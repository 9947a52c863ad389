// Package main provides the entry point for the portfolio API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_api",
	Short: "Portfolio backend API server",
	Long:  "Portfolio API serves profile, work history, certification, and blog data over a read-mostly REST API, plus a contact-form endpoint.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
