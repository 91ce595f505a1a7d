package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/formatting"
	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

// Transition реакция на смену статуса заявки
type Transition int

const (
	TransitionNone Transition = iota
	TransitionRejected
	TransitionReschedulePending
	TransitionRescheduleAccepted
	TransitionRescheduleRejected
)

func (t Transition) String() string {
	switch t {
	case TransitionRejected:
		return "rejected"
	case TransitionReschedulePending:
		return "reschedule_pending"
	case TransitionRescheduleAccepted:
		return "reschedule_accepted"
	case TransitionRescheduleRejected:
		return "reschedule_rejected"
	}
	return "none"
}

// ClassifyRequestUpdate определяет, какое уведомление положено по паре статусов.
// Срабатывает не больше одной ветки. Переход reprogramacion_pendiente -> cancelada
// идёт только в RescheduleRejected, обычное отклонение для него не отправляется.
// Прочие переходы в aceptada обрабатывает создание сессии.
func ClassifyRequestUpdate(before, after *model.Request) Transition {
	from, to := before.Status, after.Status
	if from == to {
		return TransitionNone
	}

	wasRescheduling := from == model.RequestStatusReschedulingPending

	switch to {
	case model.RequestStatusAccepted:
		if wasRescheduling {
			return TransitionRescheduleAccepted
		}
		return TransitionNone
	case model.RequestStatusCancelled:
		if wasRescheduling {
			return TransitionRescheduleRejected
		}
		return TransitionRejected
	case model.RequestStatusReschedulingPending:
		return TransitionReschedulePending
	}

	return TransitionNone
}

// Transitions превращает изменения документов в уведомления
type Transitions struct {
	notifier Notifier
	names    names
	location *time.Location
	logger   *zap.Logger
}

// NewTransitions создаёт классификатор. loc - часовой пояс для дат в текстах.
func NewTransitions(notifier Notifier, people PersonStore, loc *time.Location, logger *zap.Logger) *Transitions {
	return &Transitions{
		notifier: notifier,
		names:    names{people: people, logger: logger},
		location: loc,
		logger:   logger,
	}
}

// OnRequestCreated уведомляет тутора о новой заявке
func (t *Transitions) OnRequestCreated(ctx context.Context, r *model.Request) {
	student := t.names.student(ctx, r.StudentID)

	t.notifier.Dispatch(ctx, model.Intent{
		RecipientID: r.TutorID,
		Title:       titleNewRequest,
		Body:        newRequestBody(student, r.Course),
		Kind:        model.KindNewRequest,
		Payload:     model.NewRequestPayload(r.ID, r),
	})
}

// OnRequestUpdated реагирует на смену статуса заявки
func (t *Transitions) OnRequestUpdated(ctx context.Context, before, after *model.Request) {
	transition := ClassifyRequestUpdate(before, after)
	if transition == TransitionNone {
		return
	}

	t.logger.Debug("Request transition",
		zap.String("request_id", after.ID),
		zap.String("from", string(before.Status)),
		zap.String("to", string(after.Status)),
		zap.Stringer("transition", transition))

	switch transition {
	case TransitionRejected:
		t.requestRejected(ctx, after)
	case TransitionReschedulePending:
		t.reschedulePending(ctx, after)
	case TransitionRescheduleAccepted:
		t.rescheduleAccepted(ctx, after)
	case TransitionRescheduleRejected:
		t.rescheduleRejected(ctx, after)
	}
}

// OnSessionCreated подтверждает студенту созданную сессию
func (t *Transitions) OnSessionCreated(ctx context.Context, s *model.Session) {
	tutor := t.names.tutor(ctx, s.TutorID)

	t.notifier.Dispatch(ctx, model.Intent{
		RecipientID: s.StudentID,
		Title:       titleSessionConfirmed,
		Body:        sessionConfirmedBody(s.Course, tutor),
		Kind:        model.KindSessionConfirmed,
		Payload:     model.SessionConfirmedPayload(s.ID, s),
	})
}

func (t *Transitions) requestRejected(ctx context.Context, r *model.Request) {
	tutor := t.names.tutor(ctx, r.TutorID)

	t.notifier.Dispatch(ctx, model.Intent{
		RecipientID: r.StudentID,
		Title:       titleRequestRejected,
		Body:        requestRejectedBody(tutor, r.Course),
		Kind:        model.KindRequestRejected,
		Payload:     model.RejectionPayload(r.ID, r),
	})
}

func (t *Transitions) reschedulePending(ctx context.Context, r *model.Request) {
	student := t.names.student(ctx, r.StudentID)

	// Предложение могло прийти без вложенного объекта
	proposal := r.Reschedule
	if proposal == nil {
		proposal = &model.Reschedule{}
	}
	change := model.ScheduleChange{
		Date:      formatting.LongDate(proposal.SessionDate, t.location),
		Day:       proposal.Day,
		StartTime: proposal.StartTime,
		EndTime:   proposal.EndTime,
	}

	t.notifier.Dispatch(ctx, model.Intent{
		RecipientID: r.TutorID,
		Title:       titleReschedulePending,
		Body:        reschedulePendingBody(student, change.Day, change.Date, change.StartTime, change.EndTime),
		Kind:        model.KindReschedulePending,
		Payload:     model.ReschedulePendingPayload(r.ID, r, change),
	})
}

func (t *Transitions) rescheduleAccepted(ctx context.Context, r *model.Request) {
	// После принятия перенос уже поднят в поля верхнего уровня
	change := model.ScheduleChange{
		Date:      formatting.LongDate(r.SessionDate, t.location),
		Day:       r.Day,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}

	t.notifier.Dispatch(ctx, model.Intent{
		RecipientID: r.StudentID,
		Title:       titleRescheduleAccepted,
		Body:        rescheduleAcceptedBody(change.Day, change.Date, change.StartTime, change.EndTime),
		Kind:        model.KindRescheduleAccepted,
		Payload:     model.RescheduleAcceptedPayload(r.ID, r, change),
	})
}

func (t *Transitions) rescheduleRejected(ctx context.Context, r *model.Request) {
	t.notifier.Dispatch(ctx, model.Intent{
		RecipientID: r.StudentID,
		Title:       titleRescheduleRejected,
		Body:        bodyRescheduleRejected,
		Kind:        model.KindRescheduleRejected,
		Payload:     model.RescheduleRejectedPayload(r.ID, r),
	})
}
