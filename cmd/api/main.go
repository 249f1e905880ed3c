package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campushub/studentms/internal/pkg/logger"
	"github.com/campushub/studentms/internal/server"
)

// @title Student Management API
// @version 1.0
// @description Role-based backend for managing departments, courses, students and enrollment reports

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env file is fine; real deployments set env vars directly
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
