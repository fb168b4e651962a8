package main

import (
	"log"
	"time"

	"correios-sro/internal/core/config"
	"correios-sro/internal/core/httpclient"
	"correios-sro/internal/core/logger"
	"correios-sro/internal/core/server"
	trackinghandler "correios-sro/internal/features/tracking/handler"
	trackingservice "correios-sro/internal/features/tracking/service"
	"correios-sro/pkg/correios"

	"go.uber.org/zap"
)

// @title Correios SRO API
// @version 1.0
// @description This API exposes normalized Correios SRO parcel-tracking data.
// @contact.name API Support
// @contact.email support@correios-sro.local
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("correios_auth_mode", cfg.Correios.AuthMode),
	)

	client := correios.New(
		correios.WithAuthMode(correios.AuthMode(cfg.Correios.AuthMode)),
		correios.WithHTTPClient(httpclient.NewClient(time.Duration(cfg.Correios.TimeoutSeconds)*time.Second)),
		correios.WithLogger(l),
	)

	trackingSvc := trackingservice.NewTrackingService(client)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)

	srv.App.Get("/tracking/:code", trackingHdl.GetTracking)
	srv.App.Post("/tracking", trackingHdl.TrackBatch)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
