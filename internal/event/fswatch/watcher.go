// Package fswatch источник событий на Firestore snapshot listeners.
package fswatch

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/Freeeeeet/tutoria_notifier/internal/event"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
)

// Watcher подписывается на коллекции и превращает изменения в события.
// Первый снимок коллекции только заполняет кэш: существующие документы не считаются созданными.
type Watcher struct {
	client      *firestore.Client
	collections []event.Collection
	logger      *zap.Logger
}

// NewWatcher создаёт источник для заявок и сессий
func NewWatcher(client *firestore.Client, logger *zap.Logger) *Watcher {
	return &Watcher{
		client:      client,
		collections: []event.Collection{event.CollectionRequests, event.CollectionSessions},
		logger:      logger,
	}
}

// Run слушает все коллекции до отмены контекста
func (w *Watcher) Run(ctx context.Context, handle event.Handler) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range w.collections {
		g.Go(func() error {
			return w.watch(gctx, c, handle)
		})
	}
	return g.Wait()
}

func (w *Watcher) watch(ctx context.Context, c event.Collection, handle event.Handler) error {
	it := w.client.Collection(string(c)).Snapshots(ctx)
	defer it.Stop()

	w.logger.Info("Watching collection", zap.String("collection", string(c)))

	tracker := newTracker(c)
	for {
		qs, err := it.Next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, iterator.Done) {
				return nil
			}
			return fmt.Errorf("watch %s: %w", c, err)
		}

		changes := make([]change, 0, len(qs.Changes))
		for _, dc := range qs.Changes {
			changes = append(changes, change{
				kind: kindOf(dc.Kind),
				id:   dc.Doc.Ref.ID,
				doc:  event.Document(dc.Doc.Data()),
			})
		}

		for _, ev := range tracker.apply(changes) {
			handle(ctx, ev)
		}
	}
}

func kindOf(k firestore.DocumentChangeKind) changeKind {
	switch k {
	case firestore.DocumentAdded:
		return changeAdded
	case firestore.DocumentModified:
		return changeModified
	}
	return changeRemoved
}
