package fswatch

import "github.com/Freeeeeet/tutoria_notifier/internal/event"

type changeKind int

const (
	changeAdded changeKind = iota
	changeModified
	changeRemoved
)

type change struct {
	kind changeKind
	id   string
	doc  event.Document
}

// tracker хранит последнее известное состояние документов коллекции,
// чтобы у обновлений был before
type tracker struct {
	collection event.Collection
	docs       map[string]event.Document
	primed     bool
}

func newTracker(c event.Collection) *tracker {
	return &tracker{
		collection: c,
		docs:       map[string]event.Document{},
	}
}

// apply применяет изменения одного снимка и возвращает события
func (t *tracker) apply(changes []change) []event.Event {
	var out []event.Event
	for _, ch := range changes {
		switch ch.kind {
		case changeAdded:
			t.docs[ch.id] = ch.doc
			if t.primed {
				out = append(out, event.Event{
					Collection: t.collection,
					Op:         event.OpCreated,
					DocumentID: ch.id,
					After:      ch.doc,
				})
			}
		case changeModified:
			before := t.docs[ch.id]
			t.docs[ch.id] = ch.doc
			if t.primed {
				out = append(out, event.Event{
					Collection: t.collection,
					Op:         event.OpUpdated,
					DocumentID: ch.id,
					Before:     before,
					After:      ch.doc,
				})
			}
		case changeRemoved:
			delete(t.docs, ch.id)
		}
	}
	t.primed = true
	return out
}
