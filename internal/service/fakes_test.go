package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"github.com/Freeeeeet/tutoria_notifier/internal/push"
)

var errStoreDown = errors.New("store down")

// fakeStore хранилище в памяти для тестов сервисов
type fakeStore struct {
	mu            sync.Mutex
	users         map[string]*model.User
	students      map[string]*model.Person
	tutors        map[string]*model.Person
	sessions      []*model.Session
	notifications []*model.Notification

	failCreate bool
	failUsers  bool
	failPeople bool
	failList   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]*model.User{},
		students: map[string]*model.Person{},
		tutors:   map[string]*model.Person{},
	}
}

func (f *fakeStore) CreateNotification(_ context.Context, n *model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errStoreDown
	}
	n.CreatedAt = time.Now()
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeStore) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUsers {
		return nil, errStoreDown
	}
	return f.users[id], nil
}

func (f *fakeStore) GetStudent(_ context.Context, id string) (*model.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPeople {
		return nil, errStoreDown
	}
	return f.students[id], nil
}

func (f *fakeStore) GetTutor(_ context.Context, id string) (*model.Person, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPeople {
		return nil, errStoreDown
	}
	return f.tutors[id], nil
}

func (f *fakeStore) ListAcceptedSessionsBetween(_ context.Context, from, to time.Time) ([]*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errStoreDown
	}
	var out []*model.Session
	for _, s := range f.sessions {
		if s.Status != model.RequestStatusAccepted {
			continue
		}
		if !s.SessionDate.Before(from) && s.SessionDate.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) created() []*model.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.Notification(nil), f.notifications...)
}

// fakePusher запоминает отправленные сообщения
type fakePusher struct {
	mu   sync.Mutex
	sent []*push.Message
	err  error
}

func (p *fakePusher) Send(_ context.Context, msg *push.Message) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	p.sent = append(p.sent, msg)
	return "delivery-1", nil
}

func (p *fakePusher) messages() []*push.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*push.Message(nil), p.sent...)
}

// recordingNotifier запоминает намерения вместо отправки
type recordingNotifier struct {
	mu      sync.Mutex
	intents []model.Intent
}

func (r *recordingNotifier) Dispatch(_ context.Context, in model.Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, in)
}

func (r *recordingNotifier) all() []model.Intent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Intent(nil), r.intents...)
}
