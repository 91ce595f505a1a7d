package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/tutoria_notifier/internal/model"
	"go.uber.org/zap"
)

func newTestDispatcher(store *fakeStore, pusher *fakePusher) *Dispatcher {
	return NewDispatcher(store, store, pusher, "", zap.NewNop())
}

func TestDispatcherDispatch(t *testing.T) {
	t.Parallel()

	intent := model.Intent{
		RecipientID: "tutor-1",
		Title:       "Nueva solicitud de tutoría",
		Body:        "Ana Pérez solicita una tutoría de Física",
		Kind:        model.KindNewRequest,
		Payload:     model.Payload{model.KeyRequestID: "req-1"},
	}

	t.Run("creates record and sends push with notification id", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.users["tutor-1"] = &model.User{ID: "tutor-1", PushToken: "fcm-token"}
		pusher := &fakePusher{}

		newTestDispatcher(store, pusher).Dispatch(context.Background(), intent)

		created := store.created()
		if len(created) != 1 {
			t.Fatalf("created %d notifications, want 1", len(created))
		}
		n := created[0]
		if n.ID == "" || n.RecipientID != "tutor-1" || n.Kind != model.KindNewRequest || n.Read {
			t.Errorf("unexpected notification: %+v", n)
		}
		if n.Payload[model.KeyRequestID] != "req-1" {
			t.Errorf("Payload = %v", n.Payload)
		}
		if _, ok := n.Payload[model.KeyNotificationID]; ok {
			t.Error("stored payload must not contain notificationId")
		}

		msgs := pusher.messages()
		if len(msgs) != 1 {
			t.Fatalf("sent %d pushes, want 1", len(msgs))
		}
		msg := msgs[0]
		if msg.Token != "fcm-token" {
			t.Errorf("Token = %q", msg.Token)
		}
		if msg.Data[model.KeyNotificationID] != n.ID {
			t.Errorf("push notificationId = %q, want %q", msg.Data[model.KeyNotificationID], n.ID)
		}
		if msg.Data[model.KeyRequestID] != "req-1" {
			t.Errorf("push data lost caller payload: %v", msg.Data)
		}
		if msg.ChannelID != DefaultAndroidChannelID || msg.Priority != "high" {
			t.Errorf("android hints = %q/%q", msg.ChannelID, msg.Priority)
		}
		if msg.Sound != "default" || msg.Badge != 1 {
			t.Errorf("apns hints = %q/%d", msg.Sound, msg.Badge)
		}
	})

	t.Run("missing push token creates record without push", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.users["tutor-1"] = &model.User{ID: "tutor-1"}
		pusher := &fakePusher{}

		newTestDispatcher(store, pusher).Dispatch(context.Background(), intent)

		if got := len(store.created()); got != 1 {
			t.Errorf("created %d notifications, want 1", got)
		}
		if got := len(pusher.messages()); got != 0 {
			t.Errorf("sent %d pushes, want 0", got)
		}
	})

	t.Run("missing user profile creates record without push", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		pusher := &fakePusher{}

		newTestDispatcher(store, pusher).Dispatch(context.Background(), intent)

		if got := len(store.created()); got != 1 {
			t.Errorf("created %d notifications, want 1", got)
		}
		if got := len(pusher.messages()); got != 0 {
			t.Errorf("sent %d pushes, want 0", got)
		}
	})

	t.Run("push failure is swallowed", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.users["tutor-1"] = &model.User{ID: "tutor-1", PushToken: "bad"}
		pusher := &fakePusher{err: errors.New("invalid registration token")}

		newTestDispatcher(store, pusher).Dispatch(context.Background(), intent)

		if got := len(store.created()); got != 1 {
			t.Errorf("created %d notifications, want 1", got)
		}
	})

	t.Run("store failure skips push", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.failCreate = true
		store.users["tutor-1"] = &model.User{ID: "tutor-1", PushToken: "fcm-token"}
		pusher := &fakePusher{}

		newTestDispatcher(store, pusher).Dispatch(context.Background(), intent)

		if got := len(pusher.messages()); got != 0 {
			t.Errorf("sent %d pushes, want 0", got)
		}
	})

	t.Run("user lookup failure is swallowed", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		store.failUsers = true
		pusher := &fakePusher{}

		newTestDispatcher(store, pusher).Dispatch(context.Background(), intent)

		if got := len(store.created()); got != 1 {
			t.Errorf("created %d notifications, want 1", got)
		}
		if got := len(pusher.messages()); got != 0 {
			t.Errorf("sent %d pushes, want 0", got)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		pusher := &fakePusher{}
		bad := intent
		bad.Kind = model.Kind("solicitudTutoira")

		newTestDispatcher(store, pusher).Dispatch(context.Background(), bad)

		if got := len(store.created()); got != 0 {
			t.Errorf("created %d notifications, want 0", got)
		}
	})

	t.Run("nil payload is stored as empty map", func(t *testing.T) {
		t.Parallel()

		store := newFakeStore()
		in := intent
		in.Payload = nil

		newTestDispatcher(store, &fakePusher{}).Dispatch(context.Background(), in)

		created := store.created()
		if len(created) != 1 || created[0].Payload == nil {
			t.Fatalf("unexpected notifications: %+v", created)
		}
	})
}
