package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Reminders рассылает напоминания о ближайших сессиях
type Reminders struct {
	sessions SessionStore
	notifier Notifier
	names    names
	logger   *zap.Logger
}

// NewReminders создаёт сервис напоминаний
func NewReminders(sessions SessionStore, people PersonStore, notifier Notifier, logger *zap.Logger) *Reminders {
	return &Reminders{
		sessions: sessions,
		notifier: notifier,
		names:    names{people: people, logger: logger},
		logger:   logger,
	}
}

// Sweep находит принятые сессии в окне и отправляет напоминание студенту и тутору.
// Возвращает количество обработанных сессий. Повторная отправка не отслеживается,
// от дублей защищают только границы окна.
func (r *Reminders) Sweep(ctx context.Context, w model.ReminderWindow, now time.Time) (int, error) {
	from, to := w.Bounds(now)

	sessions, err := r.sessions.ListAcceptedSessionsBetween(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("list sessions for %s reminders: %w", w.Name, err)
	}

	if len(sessions) == 0 {
		r.logger.Info("No sessions to remind",
			zap.String("window", w.Name),
			zap.Time("from", from),
			zap.Time("to", to))
		return 0, nil
	}

	for _, s := range sessions {
		r.remind(ctx, w, s)
	}

	r.logger.Info("Session reminders sent",
		zap.String("window", w.Name),
		zap.Int("sessions", len(sessions)),
		zap.Int("notifications", len(sessions)*2))

	return len(sessions), nil
}

func (r *Reminders) remind(ctx context.Context, w model.ReminderWindow, s *model.Session) {
	var tutorName, studentName string

	// Имена пишутся в разные переменные, порядок не важен
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tutorName = r.names.tutor(gctx, s.TutorID)
		return nil
	})
	g.Go(func() error {
		studentName = r.names.student(gctx, s.StudentID)
		return nil
	})
	_ = g.Wait()

	payload := model.ReminderPayload(s)

	r.notifier.Dispatch(ctx, model.Intent{
		RecipientID: s.StudentID,
		Title:       w.Title,
		Body:        reminderBody(s.Course, tutorName, w.When),
		Kind:        model.KindSessionReminder,
		Payload:     payload,
	})

	r.notifier.Dispatch(ctx, model.Intent{
		RecipientID: s.TutorID,
		Title:       w.Title,
		Body:        reminderBody(s.Course, studentName, w.When),
		Kind:        model.KindSessionReminder,
		Payload:     payload,
	})
}
