package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ministudio/internal/adapter/repo"
	"ministudio/internal/brandgen"
	"ministudio/internal/domain"
	"ministudio/internal/http/handlers"
	"ministudio/internal/http/httpapi"
	"ministudio/internal/infra"
	"ministudio/internal/infra/geoip"
	"ministudio/internal/middleware"
	"ministudio/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Designs live in Postgres when DATABASE_URL is set, otherwise in the
	// local JSON archive.
	var designs domain.DesignRepository
	storageMode := "archive"
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		designs = repo.NewDesignRepository(pool)
		storageMode = "postgres"
	} else {
		store, err := storage.NewFileStore(cfg.StorageDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init file store")
		}
		designs = storage.NewDesignArchive(store)
		logger.Warn().Str("dir", store.BasePath()).Msg("no DATABASE_URL, designs stored on local archive")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
	}

	studio := brandgen.NewService(logger,
		brandgen.WithDelay(cfg.GenerateDelayMin, cfg.GenerateDelayMax),
	)

	app := handlers.NewApp(logger, studio, designs, storageMode)
	router := httpapi.NewRouter(app, httpapi.Options{
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultLocale:   "en",
		CountryLookup:   lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("storage", storageMode).Msg("api listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
