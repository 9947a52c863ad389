package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anilkumarravuri/portfolio-api/internal/config"
	"github.com/anilkumarravuri/portfolio-api/internal/server"
	"github.com/anilkumarravuri/portfolio-api/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the portfolio's profile, certification, blog, and contact endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	st, err := store.New()
	if err != nil {
		return fmt.Errorf("failed to build data store: %w", err)
	}

	return server.New(cfg, st).Start()
}
