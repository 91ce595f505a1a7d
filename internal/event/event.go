// Package event описывает события изменения документов, которые приходят
// из хранилища (Postgres LISTEN/NOTIFY или Firestore snapshots).
package event

import "context"

// Collection имя коллекции (таблицы) источника события
type Collection string

const (
	CollectionRequests Collection = "solicitudes_tutoria"
	CollectionSessions Collection = "sesiones_tutoria"
)

// Op тип изменения документа
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
)

// Event одно изменение документа. Before заполнен только для OpUpdated.
type Event struct {
	Collection Collection `json:"collection"`
	Op         Op         `json:"op"`
	DocumentID string     `json:"id"`
	Before     Document   `json:"before,omitempty"`
	After      Document   `json:"after"`
}

// Handler обрабатывает одно событие. Ошибки обработчик логирует сам.
type Handler func(ctx context.Context, ev Event)

// Source доставляет события до отмены контекста
type Source interface {
	Run(ctx context.Context, handle Handler) error
}
