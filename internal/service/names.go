package service

import (
	"context"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

// names разрешает отображаемые имена студентов и туторов
type names struct {
	people PersonStore
	logger *zap.Logger
}

func (n names) student(ctx context.Context, id string) string {
	p, err := n.people.GetStudent(ctx, id)
	if err != nil {
		n.logger.Warn("Failed to get student, using default label",
			zap.String("student_id", id),
			zap.Error(err))
		return model.DefaultStudentLabel
	}
	return p.DisplayName(model.DefaultStudentLabel)
}

func (n names) tutor(ctx context.Context, id string) string {
	p, err := n.people.GetTutor(ctx, id)
	if err != nil {
		n.logger.Warn("Failed to get tutor, using default label",
			zap.String("tutor_id", id),
			zap.Error(err))
		return model.DefaultTutorLabel
	}
	return p.DisplayName(model.DefaultTutorLabel)
}
