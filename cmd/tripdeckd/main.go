package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"tripdeck/internal/common"
	"tripdeck/internal/export"
	"tripdeck/internal/extract"
	"tripdeck/internal/extract/fallback"
	"tripdeck/internal/extract/heuristic"
	"tripdeck/internal/extract/mistral"
	"tripdeck/internal/extract/pdftext"
	"tripdeck/internal/images"
	"tripdeck/internal/repository"
	"tripdeck/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	tripsRepo := repository.NewTripRepository(db)
	bookingsRepo := repository.NewBookingRepository(db)

	// Extraction pipeline: pdf text -> remote LLM (when a key is present)
	// -> bilingual heuristics -> filename classifier.
	acquirer := pdftext.New(logger)
	local := heuristic.New(logger)
	classifier := fallback.New(logger)

	pipelineOpts := []extract.Option{}
	if cfg.Mistral.APIKey != "" {
		remote := mistral.NewClient(mistral.Config{
			APIKey:      cfg.Mistral.APIKey,
			BaseURL:     cfg.Mistral.BaseURL,
			Model:       cfg.Mistral.Model,
			Temperature: cfg.Mistral.Temperature,
			Timeout:     cfg.Mistral.Timeout,
		}, logger)
		pipelineOpts = append(pipelineOpts, extract.WithRemote(remote))
		logger.Info("remote extraction enabled", "model", cfg.Mistral.Model)
	} else {
		logger.Info("remote extraction disabled, using local heuristics only")
	}
	pipeline := extract.NewPipeline(acquirer, local, classifier, logger, pipelineOpts...)

	var imgs *images.Service
	if cfg.Images.UnsplashAccessKey != "" {
		imgOpts := []images.Option{}
		if cfg.Images.RedisAddr != "" {
			cache := images.NewRedisCache(cfg.Images.RedisAddr, cfg.Images.RedisPassword, cfg.Images.RedisDB)
			imgOpts = append(imgOpts, images.WithCache(cache, cfg.Images.CacheTTL))
		}
		imgs = images.New(cfg.Images.UnsplashAccessKey, logger, imgOpts...)
	}

	exporter := export.NewService(tripsRepo, bookingsRepo, logger)

	srv := server.New(server.Config{MaxUploadBytes: cfg.Upload.MaxBytes},
		tripsRepo, bookingsRepo, pipeline, exporter, imgs, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	logger.Info("stopped")
}
