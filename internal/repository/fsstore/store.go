// Package fsstore хранилище поверх Firestore. Имена коллекций и полей совпадают
// с мобильным приложением.
package fsstore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/Freeeeeet/tutoria_notifier/internal/event"
	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CollectionUsers         = "users"
	CollectionStudents      = "estudiantes"
	CollectionTutors        = "tutores"
	CollectionNotifications = "notificaciones"
)

type userDoc struct {
	FCMToken string `firestore:"fcmToken"`
	Role     string `firestore:"role"`
}

type personDoc struct {
	FirstName string `firestore:"nombre"`
	LastName  string `firestore:"apellidos"`
}

// Store реализует хранилище сервисов на Firestore
type Store struct {
	client *firestore.Client
}

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

// get читает документ; отсутствие документа - (nil, nil)
func (s *Store) get(ctx context.Context, collection, id string) (*firestore.DocumentSnapshot, error) {
	if id == "" {
		return nil, nil
	}
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return snap, nil
}

// GetUser получает профиль пользователя
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	snap, err := s.get(ctx, CollectionUsers, id)
	if err != nil || snap == nil {
		return nil, err
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}

	return &model.User{
		ID:        snap.Ref.ID,
		PushToken: doc.FCMToken,
		Role:      model.Role(doc.Role),
	}, nil
}

// GetStudent получает студента
func (s *Store) GetStudent(ctx context.Context, id string) (*model.Person, error) {
	return s.person(ctx, CollectionStudents, id)
}

// GetTutor получает тутора
func (s *Store) GetTutor(ctx context.Context, id string) (*model.Person, error) {
	return s.person(ctx, CollectionTutors, id)
}

func (s *Store) person(ctx context.Context, collection, id string) (*model.Person, error) {
	snap, err := s.get(ctx, collection, id)
	if err != nil || snap == nil {
		return nil, err
	}

	var doc personDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}

	return &model.Person{
		ID:        snap.Ref.ID,
		FirstName: doc.FirstName,
		LastName:  doc.LastName,
	}, nil
}

// CreateNotification пишет notificaciones/{id}, fechaCreacion ставит сервер
func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) error {
	wr, err := s.client.Collection(CollectionNotifications).Doc(n.ID).Set(ctx, notificationDoc(n))
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	n.CreatedAt = wr.UpdateTime
	return nil
}

// notificationDoc поля документа уведомления в формате мобильного приложения
func notificationDoc(n *model.Notification) map[string]interface{} {
	data := make(map[string]interface{}, len(n.Payload))
	for k, v := range n.Payload {
		data[k] = v
	}

	return map[string]interface{}{
		"id":               n.ID,
		"usuarioId":        n.RecipientID,
		"titulo":           n.Title,
		"mensaje":          n.Body,
		"tipo":             string(n.Kind),
		"fechaCreacion":    firestore.ServerTimestamp,
		"leida":            n.Read,
		"datosAdicionales": data,
	}
}

// ListAcceptedSessionsBetween принятые сессии с from <= fechaSesion < to
func (s *Store) ListAcceptedSessionsBetween(ctx context.Context, from, to time.Time) ([]*model.Session, error) {
	snaps, err := s.client.Collection(string(event.CollectionSessions)).
		Where("estado", "==", string(model.RequestStatusAccepted)).
		Where("fechaSesion", ">=", from).
		Where("fechaSesion", "<", to).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("list accepted sessions: %w", err)
	}

	sessions := make([]*model.Session, 0, len(snaps))
	for _, snap := range snaps {
		sessions = append(sessions, event.Document(snap.Data()).Session(snap.Ref.ID))
	}

	return sessions, nil
}
