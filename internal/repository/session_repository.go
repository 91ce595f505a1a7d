package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/repository/base"
)

type SessionRepository struct {
	*base.Repository
}

func NewSessionRepository(b *base.Repository) *SessionRepository {
	return &SessionRepository{Repository: b}
}

// ListAcceptedSessionsBetween принятые сессии с from <= fecha_sesion < to
func (r *SessionRepository) ListAcceptedSessionsBetween(ctx context.Context, from, to time.Time) ([]*model.Session, error) {
	query := `
		SELECT id, estudiante_id, tutor_id, curso, fecha_sesion, estado
		FROM sesiones_tutoria
		WHERE estado = $1 AND fecha_sesion >= $2 AND fecha_sesion < $3
		ORDER BY fecha_sesion ASC
	`

	rows, err := r.Query(ctx, query, string(model.RequestStatusAccepted), from, to)
	if err != nil {
		return nil, fmt.Errorf("list accepted sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.Session
	for rows.Next() {
		var s model.Session
		var status string
		err := rows.Scan(
			&s.ID,
			&s.StudentID,
			&s.TutorID,
			&s.Course,
			&s.SessionDate,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Status = model.RequestStatus(status)
		sessions = append(sessions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}
