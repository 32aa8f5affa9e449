package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts saved-menu announcements to a Telegram chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier initializes the Telegram Bot API client.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	return &TelegramNotifier{api: bot, chatID: chatID}, nil
}

// MenuSaved sends a one-line announcement for the saved menu file.
func (n *TelegramNotifier) MenuSaved(saved SavedMenu) error {
	msg := tgbotapi.NewMessage(n.chatID, saved.message())
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
