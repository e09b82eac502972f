package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/config"
	"github.com/earthly-ai/backend/internal/model"
	"github.com/earthly-ai/backend/internal/server"
	"github.com/earthly-ai/backend/internal/store"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	builds := store.NewMemory[model.BuildRecord]("build")
	analyses := store.NewMemory[model.AnalysisRecord]("analysis")
	router := server.NewRouter(logger, builds, analyses)

	addr := ":" + cfg.Server.Port
	logger.Info().Str("addr", addr).Msg("starting earthly-ai backend")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
