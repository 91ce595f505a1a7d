package push

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// FCMSender отправляет push через Firebase Cloud Messaging
type FCMSender struct {
	client *messaging.Client
}

// NewFCMSender создаёт отправителя из уже инициализированного Firebase приложения
func NewFCMSender(ctx context.Context, app *firebase.App) (*FCMSender, error) {
	if app == nil {
		return nil, errors.New("firebase app is required")
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}
	return &FCMSender{client: client}, nil
}

// Send отправляет одно сообщение
func (s *FCMSender) Send(ctx context.Context, msg *Message) (string, error) {
	id, err := s.client.Send(ctx, BuildFCMMessage(msg))
	if err != nil {
		return "", fmt.Errorf("send fcm message: %w", err)
	}
	return id, nil
}

// BuildFCMMessage собирает сообщение FCM
func BuildFCMMessage(msg *Message) *messaging.Message {
	data := msg.Data
	if data == nil {
		data = map[string]string{}
	}

	out := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: msg.Priority,
			Notification: &messaging.AndroidNotification{
				ChannelID: msg.ChannelID,
				Priority:  androidNotificationPriority(msg.Priority),
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: msg.Sound,
				},
			},
		},
	}

	if msg.Badge > 0 {
		badge := msg.Badge
		out.APNS.Payload.Aps.Badge = &badge
	}

	return out
}

// androidNotificationPriority приоритет уведомления в шторке, отдельный от приоритета доставки
func androidNotificationPriority(p string) messaging.AndroidNotificationPriority {
	switch p {
	case "min":
		return messaging.PriorityMin
	case "low":
		return messaging.PriorityLow
	case "default":
		return messaging.PriorityDefault
	case "high":
		return messaging.PriorityHigh
	case "max":
		return messaging.PriorityMax
	}
	return messaging.AndroidNotificationPriority(0) // zero value is the library's unexported priorityUnspecified
}
