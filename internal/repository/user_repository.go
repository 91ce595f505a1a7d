package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/repository/base"
)

type UserRepository struct {
	*base.Repository
}

func NewUserRepository(b *base.Repository) *UserRepository {
	return &UserRepository{Repository: b}
}

// GetUser получает профиль пользователя по ID
func (r *UserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT id, fcm_token, role
		FROM users
		WHERE id = $1
	`

	var user model.User
	var role string
	err := r.QueryRow(ctx, query, id).Scan(&user.ID, &user.PushToken, &role)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	user.Role = model.Role(role)

	return &user, nil
}
