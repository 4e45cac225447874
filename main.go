package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"newsletter-form/pkg/api"
	"newsletter-form/pkg/clients/cyberknight"
	"newsletter-form/pkg/config"
	"newsletter-form/pkg/logger"
	"newsletter-form/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Initialize API client
	client := cyberknight.NewClient(cfg.APIBaseURL, zl.Named("cyberknight"), cyberknight.WithTimeout(cfg.HTTPTimeout))

	// Initialize services
	controller := services.NewSubscriptionFormController(
		client,
		services.NewFeedbackRenderer(nil),
		zl.Named("form"),
	)

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := api.NewHandlers(client, controller, cfg.CouncilNumber, zl.Named("api"))
	router := api.NewRouter(handlers, zl)

	zl.Info("Server starting",
		zap.String("port", cfg.Port),
		zap.String("council", cfg.CouncilNumber),
		zap.String("api", cfg.APIBaseURL))
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Fatal("Error starting server", zap.Error(err))
	}
}
