// main.go
package main

import (
	"context"
	"log"

	"gym-booking/cmd"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/usecase"
	"gym-booking/internal/wire"
	"gym-booking/pkg/database"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Reminder delivery transport
	sender := wire.NewSender(config, logger)

	// Services and routes
	service := usecase.NewService(repos, config, sender, logger)
	app := wire.Wiring(service, config, logger)

	// Seed default membership plans on an empty database
	if config.Notifier.SeedPlans {
		if err := service.Plan.EnsureDefaults(context.Background()); err != nil {
			logger.Error("Failed to seed default plans", zap.Error(err))
		}
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
