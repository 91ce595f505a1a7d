package fswatch

import (
	"testing"

	"github.com/Freeeeeet/tutoria_notifier/internal/event"
)

func TestTrackerApply(t *testing.T) {
	t.Parallel()

	tr := newTracker(event.CollectionRequests)

	// Начальный снимок не порождает событий
	initial := tr.apply([]change{
		{kind: changeAdded, id: "r1", doc: event.Document{"estado": "pendiente"}},
		{kind: changeAdded, id: "r2", doc: event.Document{"estado": "aceptada"}},
	})
	if len(initial) != 0 {
		t.Fatalf("initial snapshot produced %d events, want 0", len(initial))
	}

	evs := tr.apply([]change{
		{kind: changeModified, id: "r1", doc: event.Document{"estado": "cancelada"}},
		{kind: changeAdded, id: "r3", doc: event.Document{"estado": "pendiente"}},
		{kind: changeRemoved, id: "r2"},
	})
	if len(evs) != 2 {
		t.Fatalf("got %d events, want 2", len(evs))
	}

	upd := evs[0]
	if upd.Op != event.OpUpdated || upd.DocumentID != "r1" || upd.Collection != event.CollectionRequests {
		t.Errorf("unexpected update event: %+v", upd)
	}
	if upd.Before.String("estado") != "pendiente" || upd.After.String("estado") != "cancelada" {
		t.Errorf("before/after = %v/%v", upd.Before, upd.After)
	}

	created := evs[1]
	if created.Op != event.OpCreated || created.DocumentID != "r3" || created.Before != nil {
		t.Errorf("unexpected create event: %+v", created)
	}

	if _, ok := tr.docs["r2"]; ok {
		t.Error("removed document still cached")
	}
}
