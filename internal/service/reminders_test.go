package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

func TestRemindersSweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	day := model.DayBeforeWindow(time.Hour)
	soon := model.SoonWindow(30 * time.Minute)

	session := func(id string, at time.Time, status model.RequestStatus) *model.Session {
		return &model.Session{
			ID:          id,
			StudentID:   "s1",
			TutorID:     "t1",
			Course:      "Física",
			SessionDate: at,
			Status:      status,
		}
	}

	t.Run("session 24h30m ahead is only in the day window", func(t *testing.T) {
		t.Parallel()

		store := peopleStore()
		store.sessions = []*model.Session{
			session("ses-1", now.Add(24*time.Hour+30*time.Minute), model.RequestStatusAccepted),
		}
		rec := &recordingNotifier{}
		r := NewReminders(store, store, rec, zap.NewNop())

		n, err := r.Sweep(context.Background(), day, now)
		if err != nil {
			t.Fatalf("Sweep(day) error: %v", err)
		}
		if n != 1 {
			t.Errorf("Sweep(day) = %d sessions, want 1", n)
		}

		n, err = r.Sweep(context.Background(), soon, now)
		if err != nil {
			t.Fatalf("Sweep(soon) error: %v", err)
		}
		if n != 0 {
			t.Errorf("Sweep(soon) = %d sessions, want 0", n)
		}

		if got := len(rec.all()); got != 2 {
			t.Errorf("got %d dispatches, want 2", got)
		}
	})

	t.Run("both parties get a reminder naming the counterpart", func(t *testing.T) {
		t.Parallel()

		store := peopleStore()
		store.sessions = []*model.Session{
			session("ses-1", now.Add(10*time.Minute), model.RequestStatusAccepted),
		}
		rec := &recordingNotifier{}
		r := NewReminders(store, store, rec, zap.NewNop())

		if _, err := r.Sweep(context.Background(), soon, now); err != nil {
			t.Fatalf("Sweep() error: %v", err)
		}

		intents := rec.all()
		if len(intents) != 2 {
			t.Fatalf("got %d dispatches, want 2", len(intents))
		}
		student, tutor := intents[0], intents[1]
		if student.RecipientID != "s1" || student.Body != "Tu sesión de Física con Luis Quispe es en 30 minutos." {
			t.Errorf("student intent = %+v", student)
		}
		if tutor.RecipientID != "t1" || tutor.Body != "Tu sesión de Física con Ana Pérez es en 30 minutos." {
			t.Errorf("tutor intent = %+v", tutor)
		}
		for _, in := range intents {
			if in.Kind != model.KindSessionReminder || in.Title != soon.Title {
				t.Errorf("unexpected kind/title: %+v", in)
			}
			if in.Payload[model.KeySessionID] != "ses-1" || in.Payload[model.KeyStudentID] != "s1" ||
				in.Payload[model.KeyTutorID] != "t1" || in.Payload[model.KeyCourse] != "Física" {
				t.Errorf("Payload = %v", in.Payload)
			}
		}
	})

	t.Run("window bounds are half-open", func(t *testing.T) {
		t.Parallel()

		store := peopleStore()
		store.sessions = []*model.Session{
			session("at-start", now.Add(24*time.Hour), model.RequestStatusAccepted),
			session("at-end", now.Add(25*time.Hour), model.RequestStatusAccepted),
			session("not-accepted", now.Add(24*time.Hour+time.Minute), model.RequestStatusPending),
		}
		rec := &recordingNotifier{}
		r := NewReminders(store, store, rec, zap.NewNop())

		n, err := r.Sweep(context.Background(), day, now)
		if err != nil {
			t.Fatalf("Sweep() error: %v", err)
		}
		if n != 1 {
			t.Fatalf("Sweep() = %d sessions, want 1", n)
		}
		if got := rec.all()[0].Payload[model.KeySessionID]; got != "at-start" {
			t.Errorf("reminded %q, want %q", got, "at-start")
		}
	})

	t.Run("missing people fall back to role labels", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.sessions = []*model.Session{
			session("ses-1", now.Add(5*time.Minute), model.RequestStatusAccepted),
		}
		rec := &recordingNotifier{}
		r := NewReminders(store, store, rec, zap.NewNop())

		if _, err := r.Sweep(context.Background(), soon, now); err != nil {
			t.Fatalf("Sweep() error: %v", err)
		}

		intents := rec.all()
		if len(intents) != 2 {
			t.Fatalf("got %d dispatches, want 2", len(intents))
		}
		if intents[0].Body != "Tu sesión de Física con Tutor es en 30 minutos." {
			t.Errorf("student body = %q", intents[0].Body)
		}
		if intents[1].Body != "Tu sesión de Física con Estudiante es en 30 minutos." {
			t.Errorf("tutor body = %q", intents[1].Body)
		}
	})

	t.Run("query failure is returned", func(t *testing.T) {
		t.Parallel()

		store := peopleStore()
		store.failList = true
		r := NewReminders(store, store, &recordingNotifier{}, zap.NewNop())

		if _, err := r.Sweep(context.Background(), day, now); !errors.Is(err, errStoreDown) {
			t.Errorf("Sweep() error = %v, want %v", err, errStoreDown)
		}
	})
}
