package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// Telegram mirrors alerts into a chat, for machines where nobody is looking
// at the desktop.
type Telegram struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Telegram{bot: b, chatID: chatID}, nil
}

func (t *Telegram) Notify(ctx context.Context, m Message) error {
	if _, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   fmt.Sprintf("%s\n%s", m.Summary, m.Body),
	}); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
