package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// ManualRequest уведомление, которое администратор отправляет вручную
type ManualRequest struct {
	RecipientID string
	Title       string
	Body        string
	Payload     model.Payload
}

// ManualSender ручная отправка уведомлений из панели администратора
type ManualSender struct {
	users    UserStore
	notifier Notifier
	logger   *zap.Logger
}

func NewManualSender(users UserStore, notifier Notifier, logger *zap.Logger) *ManualSender {
	return &ManualSender{
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

// Send проверяет роль вызывающего и отправляет одно уведомление типа manual
func (m *ManualSender) Send(ctx context.Context, callerID string, req ManualRequest) error {
	if callerID == "" {
		return ErrUnauthenticated
	}

	caller, err := m.users.GetUser(ctx, callerID)
	if err != nil {
		return fmt.Errorf("get caller profile: %w", err)
	}
	if !caller.CanSendManual() {
		m.logger.Warn("Manual notification denied", zap.String("caller_id", callerID))
		return ErrPermissionDenied
	}

	if req.RecipientID == "" || req.Title == "" || req.Body == "" {
		return fmt.Errorf("%w: recipientId, title and body are required", ErrInvalidArgument)
	}

	m.notifier.Dispatch(ctx, model.Intent{
		RecipientID: req.RecipientID,
		Title:       req.Title,
		Body:        req.Body,
		Kind:        model.KindManual,
		Payload:     req.Payload,
	})

	m.logger.Info("Manual notification sent",
		zap.String("caller_id", callerID),
		zap.String("user_id", req.RecipientID))

	return nil
}
