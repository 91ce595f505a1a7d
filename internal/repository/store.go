package repository

import (
	"github.com/Freeeeeet/tutoria_notifier/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store хранилище на Postgres, собранное из репозиториев
type Store struct {
	*UserRepository
	*PersonRepository
	*NotificationRepository
	*SessionRepository
}

// NewStore создаёт хранилище поверх пула соединений
func NewStore(pool *pgxpool.Pool) *Store {
	b := base.NewRepository(pool)
	return &Store{
		UserRepository:         NewUserRepository(b),
		PersonRepository:       NewPersonRepository(b),
		NotificationRepository: NewNotificationRepository(b),
		SessionRepository:      NewSessionRepository(b),
	}
}
