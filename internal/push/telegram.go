package push

import (
	"context"
	"fmt"
	"html"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramSender доставляет уведомления сообщением в Telegram.
// Токен пользователя для этого транспорта - его chat id.
type TelegramSender struct {
	bot *bot.Bot
}

// NewTelegramSender создаёт отправителя по токену бота
func NewTelegramSender(token string, opts ...bot.Option) (*TelegramSender, error) {
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSender{bot: b}, nil
}

// Send отправляет заголовок и текст одним сообщением
func (s *TelegramSender) Send(ctx context.Context, msg *Message) (string, error) {
	chatID, err := strconv.ParseInt(msg.Token, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid telegram chat id %q: %w", msg.Token, err)
	}

	sent, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      TelegramText(msg),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return "", fmt.Errorf("send telegram message: %w", err)
	}

	return strconv.Itoa(sent.ID), nil
}

// TelegramText текст сообщения: жирный заголовок и тело
func TelegramText(msg *Message) string {
	return fmt.Sprintf("🔔 <b>%s</b>\n\n%s", html.EscapeString(msg.Title), html.EscapeString(msg.Body))
}
