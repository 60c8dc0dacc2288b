// Package session provides the injectable session provider. Every consumer
// reads the one authoritative store and reacts to its change notifications;
// nothing re-reads ambient state.
package session

import (
	"context"
	"sync"

	"github.com/vitrinedev/vitrine/internal/domain"
)

// EventType identifies a session change.
type EventType string

const (
	EventCreated EventType = "created"
	EventCleared EventType = "cleared"
)

// Event describes one session change. The channel is scoped to session
// changes only, so subscribers never wake up on unrelated writes.
type Event struct {
	Type    EventType
	Token   string
	Session *domain.Session
}

// Store holds authenticated sessions keyed by bearer token.
//
// Clear is atomic (all session fields vanish together) and notifies
// subscribers synchronously before returning, so no consumer can observe a
// half-cleared session and no queued request can pick up a revoked token
// after its owner saw the clear complete.
type Store interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Clear(ctx context.Context, token string) error
	Subscribe(fn func(Event)) (unsubscribe func())
}

// notifier implements synchronous fan-out to subscribers. Shared by both
// store backends.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Event)
}

func (n *notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(Event))
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notify invokes every subscriber on the caller's goroutine, in registration
// order not guaranteed. It returns only after all subscribers ran.
func (n *notifier) notify(ev Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// MemoryStore is an in-memory session store for development and tests.
type MemoryStore struct {
	notifier

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

func (s *MemoryStore) Put(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	s.sessions[session.Token] = *session
	s.mu.Unlock()

	s.notify(Event{Type: EventCreated, Token: session.Token, Session: session})
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemoryStore) Clear(ctx context.Context, token string) error {
	s.mu.Lock()
	_, existed := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if existed {
		s.notify(Event{Type: EventCleared, Token: token})
	}
	return nil
}
