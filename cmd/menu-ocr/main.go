package main

import (
	"context"
	"os"
	"time"

	"menu-ocr/internal/app"
	"menu-ocr/internal/config"
	"menu-ocr/internal/fetch"
	"menu-ocr/internal/llm"
	"menu-ocr/internal/menu"
	"menu-ocr/internal/notify"
	"menu-ocr/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// .env is a local convenience; in CI the variables come from the environment.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	geminiClient, err := llm.NewGeminiClient(ctx, cfg, menu.ResponseSchema())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}
	defer geminiClient.Close()

	store, err := storage.NewMenuStore(cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize menu store")
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramBotToken != "" {
		notifier, err = notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Telegram notifier")
		}
	}

	application := app.NewApp(
		fetch.NewFetcher(),
		menu.NewExtractor(geminiClient),
		store,
		notifier,
		cfg.ImageURL,
		time.Now().Year(),
	)

	path, err := application.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("menu extraction failed")
	}

	log.Info().Str("path", path).Msg("menu extraction successful")
}
