package config

import (
	"fmt"
	"os"
)

const (
	defaultGeminiModel = "gemini-2.5-pro"
	defaultOutputDir   = "menus"
)

// Config holds the configuration for the application.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	ImageURL     string
	OutputDir    string

	// Telegram Config (optional; notifications disabled when token is empty)
	TelegramBotToken string
	TelegramChatID   int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	imageURL := os.Getenv("IMAGE_URL")
	if imageURL == "" {
		return nil, fmt.Errorf("IMAGE_URL environment variable not set")
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = defaultGeminiModel
	}

	outputDir := os.Getenv("MENU_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	// Telegram Config (optional; the pipeline runs fine without it)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramChatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	var telegramChatID int64
	if telegramChatIDStr != "" {
		fmt.Sscanf(telegramChatIDStr, "%d", &telegramChatID)
	}
	if telegramBotToken != "" && telegramChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID environment variable not set")
	}

	return &Config{
		GeminiAPIKey:     geminiAPIKey,
		GeminiModel:      geminiModel,
		ImageURL:         imageURL,
		OutputDir:        outputDir,
		TelegramBotToken: telegramBotToken,
		TelegramChatID:   telegramChatID,
	}, nil
}
