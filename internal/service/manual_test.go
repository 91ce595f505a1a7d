package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

func TestManualSenderSend(t *testing.T) {
	t.Parallel()

	req := ManualRequest{
		RecipientID: "s1",
		Title:       "Mantenimiento",
		Body:        "La plataforma estará en mantenimiento esta noche.",
		Payload:     model.Payload{"origen": "panel"},
	}

	setup := func() (*fakeStore, *ManualSender) {
		store := newFakeStore()
		store.users["admin-1"] = &model.User{ID: "admin-1", Role: model.RoleAdmin}
		store.users["root-1"] = &model.User{ID: "root-1", Role: model.RoleSuperAdmin}
		store.users["student-1"] = &model.User{ID: "student-1", Role: "estudiante"}
		dispatcher := NewDispatcher(store, store, &fakePusher{}, "", zap.NewNop())
		return store, NewManualSender(store, dispatcher, zap.NewNop())
	}

	t.Run("admin creates exactly one record", func(t *testing.T) {
		t.Parallel()

		store, sender := setup()
		if err := sender.Send(context.Background(), "admin-1", req); err != nil {
			t.Fatalf("Send() error: %v", err)
		}

		created := store.created()
		if len(created) != 1 {
			t.Fatalf("created %d notifications, want 1", len(created))
		}
		if created[0].Kind != model.KindManual || created[0].RecipientID != "s1" {
			t.Errorf("unexpected notification: %+v", created[0])
		}
		if created[0].Payload["origen"] != "panel" {
			t.Errorf("Payload = %v", created[0].Payload)
		}
	})

	t.Run("super admin is allowed", func(t *testing.T) {
		t.Parallel()

		store, sender := setup()
		if err := sender.Send(context.Background(), "root-1", req); err != nil {
			t.Fatalf("Send() error: %v", err)
		}
		if got := len(store.created()); got != 1 {
			t.Errorf("created %d notifications, want 1", got)
		}
	})

	t.Run("non-admin is denied and nothing is created", func(t *testing.T) {
		t.Parallel()

		store, sender := setup()
		err := sender.Send(context.Background(), "student-1", req)
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("Send() error = %v, want %v", err, ErrPermissionDenied)
		}
		if got := len(store.created()); got != 0 {
			t.Errorf("created %d notifications, want 0", got)
		}
	})

	t.Run("caller without profile is denied", func(t *testing.T) {
		t.Parallel()

		_, sender := setup()
		if err := sender.Send(context.Background(), "ghost", req); !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("Send() error = %v, want %v", err, ErrPermissionDenied)
		}
	})

	t.Run("anonymous caller is unauthenticated", func(t *testing.T) {
		t.Parallel()

		store, sender := setup()
		if err := sender.Send(context.Background(), "", req); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("Send() error = %v, want %v", err, ErrUnauthenticated)
		}
		if got := len(store.created()); got != 0 {
			t.Errorf("created %d notifications, want 0", got)
		}
	})

	t.Run("missing fields are invalid", func(t *testing.T) {
		t.Parallel()

		_, sender := setup()
		bad := req
		bad.Title = ""
		if err := sender.Send(context.Background(), "admin-1", bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Send() error = %v, want %v", err, ErrInvalidArgument)
		}
	})

	t.Run("profile lookup failure is returned", func(t *testing.T) {
		t.Parallel()

		store, sender := setup()
		store.failUsers = true
		err := sender.Send(context.Background(), "admin-1", req)
		if !errors.Is(err, errStoreDown) {
			t.Errorf("Send() error = %v, want %v", err, errStoreDown)
		}
	})
}
