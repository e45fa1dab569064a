package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and REST API server",
	Long:  `Start an HTTP server that serves the interview prep form and exposes REST endpoints for generating guides.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	log := newLogger()

	service, llmClient, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = llmClient.Close() }()

	srv, err := server.New(server.Config{
		Port:    servePort,
		Service: service,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
