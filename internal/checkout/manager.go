package checkout

import (
	"log/slog"
	"sync"

	"github.com/vitrinedev/vitrine/internal/billing"
	"github.com/vitrinedev/vitrine/internal/session"
)

// Manager hands out one Flow per session token so that concurrent requests
// from the same signed-in user share checkout state while different users
// never see each other's.
type Manager struct {
	mu       sync.Mutex
	flows    map[string]*Flow
	provider billing.Provider
	carts    CartSource
	logger   *slog.Logger
}

func NewManager(provider billing.Provider, carts CartSource, logger *slog.Logger) *Manager {
	return &Manager{
		flows:    make(map[string]*Flow),
		provider: provider,
		carts:    carts,
		logger:   logger,
	}
}

// FlowFor returns the flow for the given session token, creating it on first
// use.
func (m *Manager) FlowFor(token string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flows[token]
	if !ok {
		f = NewFlow(m.provider, m.carts, m.logger)
		m.flows[token] = f
	}
	return f
}

// Release drops the flow for a token. Wired to session store events so a
// sign-out or expired session discards any in-progress checkout.
func (m *Manager) Release(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, token)
}

// WatchSessions subscribes to the session store and releases flows when
// their session is cleared. Returns the unsubscribe func.
func (m *Manager) WatchSessions(store session.Store) func() {
	return store.Subscribe(func(ev session.Event) {
		if ev.Type == session.EventCleared {
			m.Release(ev.Token)
		}
	})
}
