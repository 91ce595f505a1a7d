package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
)

// Отсутствующие записи хранилища возвращают (nil, nil), ошибка - только при сбое.

type NotificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
}

type UserStore interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type PersonStore interface {
	GetStudent(ctx context.Context, id string) (*model.Person, error)
	GetTutor(ctx context.Context, id string) (*model.Person, error)
}

type SessionStore interface {
	// ListAcceptedSessionsBetween сессии в статусе aceptada с from <= fechaSesion < to
	ListAcceptedSessionsBetween(ctx context.Context, from, to time.Time) ([]*model.Session, error)
}

// Store всё, что нужно сервисам от хранилища
type Store interface {
	NotificationStore
	UserStore
	PersonStore
	SessionStore
}

// Notifier создаёт уведомление и пытается доставить push. Никогда не падает.
type Notifier interface {
	Dispatch(ctx context.Context, in model.Intent)
}
