package main

import (
	"fmt"
	"os"

	"fleet-telemetry-service/internal/config"
	"fleet-telemetry-service/internal/db"
	httphandler "fleet-telemetry-service/internal/http"
	"fleet-telemetry-service/internal/logger"
	"fleet-telemetry-service/internal/repository"
	"fleet-telemetry-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	fuelRepo := repository.NewFuelRepository(database)
	weightRepo := repository.NewWeightRepository(database)
	trackingRepo := repository.NewTrackingRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)

	uploadService := service.NewUploadService(fuelRepo, weightRepo, trackingRepo, appLogger)
	distanceService := service.NewDistanceService(trackingRepo, appLogger)
	analysisService := service.NewAnalysisService(fuelRepo, weightRepo, vehicleRepo, distanceService, appLogger)
	vehicleService := service.NewVehicleService(vehicleRepo, fuelRepo, weightRepo, trackingRepo, appLogger)
	statsService := service.NewStatsService(fuelRepo, weightRepo, trackingRepo, appLogger)

	handler := httphandler.NewHandler(uploadService, analysisService, vehicleService, statsService, appLogger)
	router := httphandler.NewRouter(handler, cfg.Environment, cfg.Upload.MaxFileSizeMB)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleet telemetry service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
