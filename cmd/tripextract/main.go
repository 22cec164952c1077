package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"tripdeck/internal/common"
	"tripdeck/internal/extract"
	"tripdeck/internal/extract/fallback"
	"tripdeck/internal/extract/heuristic"
	"tripdeck/internal/extract/mistral"
	"tripdeck/internal/extract/pdftext"
)

// tripextract runs the extraction pipeline on a single PDF and prints the
// resulting booking draft as JSON. Useful for tuning the heuristics against
// real confirmation documents without standing up the server.
func main() {
	noRemote := flag.Bool("no-remote", false, "skip the remote LLM even if MISTRAL_API_KEY is set")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() < 1 {
		logger.Error("usage: tripextract [-no-remote] [-v] <booking.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read pdf", "path", path, "error", err)
		os.Exit(1)
	}

	opts := []extract.Option{}
	if !*noRemote && cfg.Mistral.APIKey != "" {
		remote := mistral.NewClient(mistral.Config{
			APIKey:      cfg.Mistral.APIKey,
			BaseURL:     cfg.Mistral.BaseURL,
			Model:       cfg.Mistral.Model,
			Temperature: cfg.Mistral.Temperature,
			Timeout:     cfg.Mistral.Timeout,
		}, logger)
		opts = append(opts, extract.WithRemote(remote))
	}
	pipeline := extract.NewPipeline(pdftext.New(logger), heuristic.New(logger), fallback.New(logger), logger, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result := pipeline.Run(ctx, data, filepath.Base(path))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
