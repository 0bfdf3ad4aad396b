package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/i4ali/flygen/internal/http/handlers"
	httpapi "github.com/i4ali/flygen/internal/http/httpapi"
	"github.com/i4ali/flygen/internal/infra"
	"github.com/i4ali/flygen/internal/prompt"
	"github.com/i4ali/flygen/internal/providers/image"
	"github.com/i4ali/flygen/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// A typo in a descriptor table would otherwise surface as a runtime
	// error on the first request that touches it.
	if err := prompt.ValidateTables(); err != nil {
		logger.Fatal().Err(err).Msg("prompt tables are incomplete")
	}

	store, err := storage.NewFileStore(cfg.OutputDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare output directory")
	}

	var generator image.Generator
	if apiKey := cfg.ProviderAPIKey(); apiKey != "" {
		dispatcher, err := image.NewDispatcher(image.Options{
			APIKey:        apiKey,
			BaseURL:       cfg.ProviderBaseURL(),
			UseOpenRouter: cfg.UseOpenRouter(),
			Store:         store,
			Timeout:       cfg.GenerationTimeout,
			Parallel:      cfg.ParallelGeneration,
			Logger:        &logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to construct dispatcher")
		}
		logger.Info().Str("provider", dispatcher.Provider()).Msg("image generation enabled")
		generator = dispatcher
	} else {
		logger.Warn().Msg("no provider credentials configured, using mock backend")
		generator = image.NewMock(store, &logger)
	}

	app := handlers.NewApp(generator, logger)

	allowedOrigins := strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",")
	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		AllowedOrigins:  allowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
