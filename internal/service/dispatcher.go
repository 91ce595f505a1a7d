package service

import (
	"context"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/push"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultAndroidChannelID = "tutoring_app_channel"

	androidPriority = "high"
	apnsSound       = "default"
	apnsBadge       = 1
)

// Dispatcher сохраняет уведомление и отправляет push получателю
type Dispatcher struct {
	notifications NotificationStore
	users         UserStore
	pusher        push.Sender
	channelID     string
	logger        *zap.Logger
}

// NewDispatcher создаёт диспетчер уведомлений
func NewDispatcher(
	notifications NotificationStore,
	users UserStore,
	pusher push.Sender,
	channelID string,
	logger *zap.Logger,
) *Dispatcher {
	if channelID == "" {
		channelID = DefaultAndroidChannelID
	}
	return &Dispatcher{
		notifications: notifications,
		users:         users,
		pusher:        pusher,
		channelID:     channelID,
		logger:        logger,
	}
}

// Dispatch сохраняет запись в notificaciones и отправляет push.
// Ошибки логируются и не возвращаются: запись без доставленного push - нормальный исход.
func (d *Dispatcher) Dispatch(ctx context.Context, in model.Intent) {
	if !in.Kind.Valid() {
		d.logger.Error("Unknown notification kind, skipping",
			zap.String("kind", string(in.Kind)),
			zap.String("user_id", in.RecipientID))
		return
	}

	n := &model.Notification{
		ID:          uuid.NewString(),
		RecipientID: in.RecipientID,
		Title:       in.Title,
		Body:        in.Body,
		Kind:        in.Kind,
		Read:        false,
		Payload:     in.Payload,
	}
	if n.Payload == nil {
		n.Payload = model.Payload{}
	}

	if err := d.notifications.CreateNotification(ctx, n); err != nil {
		d.logger.Error("Failed to create notification",
			zap.String("user_id", in.RecipientID),
			zap.String("kind", string(in.Kind)),
			zap.Error(err))
		return
	}

	d.logger.Info("Notification created",
		zap.String("notification_id", n.ID),
		zap.String("user_id", n.RecipientID),
		zap.String("kind", string(n.Kind)))

	d.sendPush(ctx, n.RecipientID, n.Title, n.Body, n.Payload.Merge(model.Payload{
		model.KeyNotificationID: n.ID,
	}))
}

// sendPush только отправляет push, документ не создаёт
func (d *Dispatcher) sendPush(ctx context.Context, userID, title, body string, data model.Payload) {
	user, err := d.users.GetUser(ctx, userID)
	if err != nil {
		d.logger.Error("Failed to get user for push",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}
	if user == nil {
		d.logger.Info("User not found, push skipped", zap.String("user_id", userID))
		return
	}
	if user.PushToken == "" {
		d.logger.Info("User has no push token, push skipped", zap.String("user_id", userID))
		return
	}

	deliveryID, err := d.pusher.Send(ctx, &push.Message{
		Token:     user.PushToken,
		Title:     title,
		Body:      body,
		Data:      data,
		ChannelID: d.channelID,
		Priority:  androidPriority,
		Sound:     apnsSound,
		Badge:     apnsBadge,
	})
	if err != nil {
		d.logger.Error("Failed to send push",
			zap.String("user_id", userID),
			zap.Error(err))
		return
	}

	d.logger.Info("Push sent",
		zap.String("user_id", userID),
		zap.String("delivery_id", deliveryID))
}
