package session

import (
	"context"
	"errors"
	"testing"

	"github.com/vitrinedev/vitrine/internal/domain"
)

func testSession(token string) *domain.Session {
	return &domain.Session{
		Token:  token,
		UserID: "u1",
		Name:   "Maria",
		Role:   domain.RoleCustomer,
	}
}

func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Put(ctx, testSession("tok1")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "tok1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.UserID != "u1" || got.Role != domain.RoleCustomer {
		t.Errorf("unexpected session: %+v", got)
	}
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemoryStore_ClearIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Put(ctx, testSession("tok1"))

	// By the time a subscriber observes the clear, the session must already
	// be gone: no half-cleared state is ever visible.
	sawClear := false
	store.Subscribe(func(ev Event) {
		if ev.Type != EventCleared {
			return
		}
		sawClear = true
		if _, err := store.Get(ctx, ev.Token); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("session still readable during clear notification: %v", err)
		}
	})

	if err := store.Clear(ctx, "tok1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !sawClear {
		t.Error("subscriber was not notified before Clear returned")
	}
}

func TestMemoryStore_ClearAbsentTokenDoesNotNotify(t *testing.T) {
	store := NewMemoryStore()

	notified := false
	store.Subscribe(func(Event) { notified = true })

	if err := store.Clear(context.Background(), "missing"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if notified {
		t.Error("clearing an absent session should not notify")
	}
}

func TestMemoryStore_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	calls := 0
	unsubscribe := store.Subscribe(func(Event) { calls++ })

	store.Put(ctx, testSession("tok1"))
	unsubscribe()
	store.Put(ctx, testSession("tok2"))

	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}

func TestMemoryStore_PutNotifiesCreated(t *testing.T) {
	store := NewMemoryStore()

	var got Event
	store.Subscribe(func(ev Event) { got = ev })

	store.Put(context.Background(), testSession("tok1"))

	if got.Type != EventCreated || got.Token != "tok1" {
		t.Errorf("unexpected event: %+v", got)
	}
	if got.Session == nil || got.Session.UserID != "u1" {
		t.Errorf("event should carry the session, got %+v", got.Session)
	}
}
