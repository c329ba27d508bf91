package main

// @title Geocode Microservice API
// @version 1.0.0
// @description Forwards address geocoding requests to the Google Maps Geocoding API.
// @description Returns the parsed response or the raw upstream body.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/geocode-microservice/docs"
	"github.com/geocode-microservice/internal/config"
	httpDelivery "github.com/geocode-microservice/internal/delivery/http"
	"github.com/geocode-microservice/internal/delivery/http/handler"
	"github.com/geocode-microservice/internal/geocode"
	"github.com/geocode-microservice/internal/pkg/httpclient"
	"github.com/geocode-microservice/internal/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "geocode-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geocode Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geocode_base_url", cfg.Geocode.BaseURL),
		zap.Bool("proxy", cfg.Geocode.ProxyURL != ""),
	)

	// 3. Resolve the default API key; requests may still bring their own
	defaultKey, err := cfg.APIKey()
	if err != nil {
		log.Warn("No default Google Maps API key configured, requests must pass key", zap.Error(err))
	}

	// 4. Outbound transport and geocode client
	httpClient, err := httpclient.New(cfg.HTTPClientConfig(), log.Named("upstream"))
	if err != nil {
		log.Fatal("Failed to build HTTP client", zap.Error(err))
	}
	geocodeClient := geocode.NewClient(cfg.ClientConfig(), httpClient, log.Named("geocode"))

	// 5. Handlers and server
	geocodeHandler := handler.NewGeocodeHandler(geocodeClient, defaultKey, log)
	server := httpDelivery.NewServer(cfg, log, geocodeHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
