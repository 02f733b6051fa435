package main

import (
	"os"

	"github.com/kerem/schoolhub/internal/pkg/logger"
	"github.com/kerem/schoolhub/internal/server"
)

// @title SchoolHub API
// @version 1.0
// @description School records API for managing students, teachers, fees and grade assignments.

// @contact.name API Support
// @contact.email support@schoolhub.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
