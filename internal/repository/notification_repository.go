package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/repository/base"
)

type NotificationRepository struct {
	*base.Repository
}

func NewNotificationRepository(b *base.Repository) *NotificationRepository {
	return &NotificationRepository{Repository: b}
}

// CreateNotification создаёт запись уведомления, fecha_creacion ставит база
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *model.Notification) error {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	query := `
		INSERT INTO notificaciones (id, usuario_id, titulo, mensaje, tipo, leida, datos_adicionales)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
		RETURNING fecha_creacion
	`

	err = r.QueryRow(
		ctx, query,
		n.ID,
		n.RecipientID,
		n.Title,
		n.Body,
		string(n.Kind),
		n.Read,
		string(payload),
	).Scan(&n.CreatedAt)

	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}
