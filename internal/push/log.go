package push

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogSender ничего не отправляет, только пишет сообщение в лог.
// Используется в development, когда нет ключей Firebase.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg *Message) (string, error) {
	id := "log-" + uuid.NewString()
	s.logger.Info("Push message (not delivered)",
		zap.String("delivery_id", id),
		zap.String("title", msg.Title),
		zap.String("body", msg.Body),
		zap.Any("data", msg.Data))
	return id, nil
}
