// Package events направляет изменения документов в обработчики переходов.
package events

import (
	"context"

	"github.com/Freeeeeet/tutoria_notifier/internal/event"
	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

// Transitions обработчики изменений заявок и сессий
type Transitions interface {
	OnRequestCreated(ctx context.Context, r *model.Request)
	OnRequestUpdated(ctx context.Context, before, after *model.Request)
	OnSessionCreated(ctx context.Context, s *model.Session)
}

// Router реализует event.Handler
type Router struct {
	transitions Transitions
	logger      *zap.Logger
}

func NewRouter(transitions Transitions, logger *zap.Logger) *Router {
	return &Router{
		transitions: transitions,
		logger:      logger,
	}
}

// Handle обрабатывает одно событие. Паника в обработчике не останавливает источник
func (r *Router) Handle(ctx context.Context, ev event.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic while handling document event",
				zap.Any("panic", rec),
				zap.String("collection", string(ev.Collection)),
				zap.String("id", ev.DocumentID),
			)
		}
	}()

	r.logger.Debug("Document event",
		zap.String("collection", string(ev.Collection)),
		zap.String("op", string(ev.Op)),
		zap.String("id", ev.DocumentID),
	)

	switch ev.Collection {
	case event.CollectionRequests:
		switch ev.Op {
		case event.OpCreated:
			r.transitions.OnRequestCreated(ctx, ev.After.Request(ev.DocumentID))
		case event.OpUpdated:
			r.transitions.OnRequestUpdated(ctx, ev.Before.Request(ev.DocumentID), ev.After.Request(ev.DocumentID))
		}
	case event.CollectionSessions:
		// Изменения сессий не уведомляются
		if ev.Op == event.OpCreated {
			r.transitions.OnSessionCreated(ctx, ev.After.Session(ev.DocumentID))
		}
	default:
		r.logger.Warn("Event from unknown collection", zap.String("collection", string(ev.Collection)))
	}
}
