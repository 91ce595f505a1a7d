// Package push содержит транспорты доставки push-уведомлений.
package push

import "context"

// Message push-сообщение с подсказками для платформ
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string

	// Android
	ChannelID string
	Priority  string

	// APNs
	Sound string
	Badge int
}

// Sender отправляет сообщение и возвращает идентификатор доставки
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}
