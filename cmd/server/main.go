package main

import (
	"log"

	"github.com/mosaops/timesheet-backend-go/internal/api"
	"github.com/mosaops/timesheet-backend-go/internal/autofix"
	"github.com/mosaops/timesheet-backend-go/internal/config"
	"github.com/mosaops/timesheet-backend-go/internal/database"
	"github.com/mosaops/timesheet-backend-go/internal/handler"
	"github.com/mosaops/timesheet-backend-go/internal/repository"
	"github.com/mosaops/timesheet-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()
	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	stateRepo := repository.NewStateRepository(db)
	validationRepo := repository.NewValidationRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	tripService := service.NewTripService(tripRepo)
	wizardService := service.NewWizardService(stateRepo)
	validationService := service.NewValidationService(validationRepo)

	runner := autofix.NewRunner(db)

	handlers := api.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Trip:       handler.NewTripHandler(tripService),
		Wizard:     handler.NewWizardHandler(wizardService),
		Validation: handler.NewValidationHandler(validationService, runner),
		History:    handler.NewHistoryHandler(historyRepo),
	}

	router := api.SetupRouter(authService, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
