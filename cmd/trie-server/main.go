package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/prefix-trie/internal/api"
	"github.com/kumarlokesh/prefix-trie/internal/config"
	"github.com/kumarlokesh/prefix-trie/internal/dictionary"
	"github.com/kumarlokesh/prefix-trie/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfgPath := *configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.GetConfigPath()
		if err != nil {
			log.Warn().Err(err).Msg("Using default configuration")
			cfgPath = ""
		}
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	st := store.New(store.WithLogger(logger.With().Str("component", "store").Logger()))

	if cfg.Dictionary.Path != "" {
		words, report, err := dictionary.LoadFile(cfg.Dictionary.Path,
			dictionary.SkipInvalid(cfg.Dictionary.SkipInvalid),
			dictionary.WithLogger(logger),
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load dictionary")
		}
		if _, err := st.InsertAll(words); err != nil {
			logger.Fatal().Err(err).Msg("Failed to populate store")
		}
		logger.Info().
			Str("path", cfg.Dictionary.Path).
			Int("words", report.Words).
			Int("skipped", report.Skipped).
			Msg("Loaded dictionary")
	}

	srv := api.NewServer(cfg.Server.Addr(), st,
		api.WithLogger(logger.With().Str("component", "api").Logger()),
		api.WithLimits(cfg.Autocomplete.DefaultLimit, cfg.Autocomplete.MaxLimit),
		api.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
	)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exiting")
}
