package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/repository/base"
)

// PersonRepository читает имена из estudiantes и tutores
type PersonRepository struct {
	*base.Repository
}

func NewPersonRepository(b *base.Repository) *PersonRepository {
	return &PersonRepository{Repository: b}
}

// GetStudent получает студента по ID
func (r *PersonRepository) GetStudent(ctx context.Context, id string) (*model.Person, error) {
	return r.get(ctx, `SELECT id, nombre, apellidos FROM estudiantes WHERE id = $1`, id)
}

// GetTutor получает тутора по ID
func (r *PersonRepository) GetTutor(ctx context.Context, id string) (*model.Person, error) {
	return r.get(ctx, `SELECT id, nombre, apellidos FROM tutores WHERE id = $1`, id)
}

func (r *PersonRepository) get(ctx context.Context, query, id string) (*model.Person, error) {
	var p model.Person
	err := r.QueryRow(ctx, query, id).Scan(&p.ID, &p.FirstName, &p.LastName)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by id: %w", err)
	}
	return &p, nil
}
