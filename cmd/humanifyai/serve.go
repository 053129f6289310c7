package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evan-william/humanifyai/internal/config"
	"github.com/evan-william/humanifyai/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the analyze and transform endpoints plus the web dashboard.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		settings.Port = servePort
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	log := newLogger(settings.LogLevel)

	srv, err := server.New(settings, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
