package main

import (
	"iot-site-backend/config"
	"iot-site-backend/server"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Configuration validation failed")
	}

	// Configure logging before anything else writes
	config.SetupLogging(cfg.Logging)

	// Create and start server
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize server")
	}

	log.Info("Site backend starting...")
	if err := srv.Start(); err != nil {
		log.WithError(err).Fatal("Server failed")
	}
}
