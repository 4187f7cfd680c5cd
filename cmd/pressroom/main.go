package main

import (
	"context"
	"flag"
	"os"

	"github.com/pevans/pressroom"
	"github.com/pevans/pressroom/config"
	"github.com/pevans/pressroom/discovery"
	"github.com/pevans/pressroom/export"
	"github.com/pevans/pressroom/history"
	"github.com/pevans/pressroom/logger"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Every flag is optional; with none the compiled-in listing is exported
	configPath := flag.String("config", getEnv("PRESSROOM_CONFIG", config.DefaultPath), "Path to YAML config file (PRESSROOM_CONFIG)")
	outputPath := flag.String("output", os.Getenv("PRESSROOM_OUTPUT"), "Override the output file path (PRESSROOM_OUTPUT)")
	logLevel := flag.String("log-level", os.Getenv("PRESSROOM_LOG_LEVEL"), "Override the log level (PRESSROOM_LOG_LEVEL)")

	flag.Parse()

	logger.Init(getEnv("PRESSROOM_LOG_LEVEL", "info"))
	log := logger.WithComponent("main")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error().Err(err).Str("path", *configPath).Msg("Failed to load config, using defaults")
		cfg = config.Default()
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger.Init(cfg.LogLevel)

	observer := logger.NewObserver(logger.WithComponent("pressroom"))

	fetcher := discovery.NewFetcher(&discovery.FetcherConfig{
		Timeout:       cfg.Timeout,
		UserAgent:     cfg.UserAgent,
		RateInterval:  cfg.RateLimit,
		RespectRobots: cfg.RespectRobots,
		List:          cfg.List,
	}, observer)

	pipeline := &pressroom.Pipeline{
		BaseURL:     cfg.BaseURL,
		PageSegment: cfg.List.PageSegment,
		Fetcher:     fetcher,
		Writer:      export.NewCSVWriter(cfg.OutputPath, observer),
		Observer:    observer,
	}

	if cfg.HistoryDSN != "" {
		store, err := history.NewStore(cfg.HistoryDSN)
		if err != nil {
			log.Error().Err(err).Str("dsn", cfg.HistoryDSN).Msg("Failed to open run history, continuing without it")
		} else {
			defer store.Close()
			pipeline.History = store
		}
	}

	log.Info().Str("url", cfg.BaseURL).Str("output", cfg.OutputPath).Msg("Starting collection")
	result := pipeline.Run(context.Background())
	log.Info().
		Str("run_id", result.Run.RunID.String()).
		Int("records", len(result.Collection.Records)).
		Bool("written", result.Written).
		Msg("Run finished")
}
