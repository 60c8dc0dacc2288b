package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
)

// testBackend wraps an httptest server and counts the requests it served.
type testBackend struct {
	server   *httptest.Server
	requests atomic.Int64
}

func newTestBackend(t *testing.T, handler http.HandlerFunc) *testBackend {
	t.Helper()
	b := &testBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) client() *gateway.Client {
	return gateway.New(gateway.Config{
		BaseURL: b.server.URL,
		Timeout: 2 * time.Second,
	}, nil, nil, slog.New(slog.DiscardHandler))
}

func sessionContext() context.Context {
	return domain.NewContextWithSession(context.Background(), &domain.Session{
		Token:  "tok",
		UserID: "u1",
		Role:   domain.RoleCustomer,
	})
}

func TestCartService_FetchMissingCartIsEmpty(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	cart, err := carts.Fetch(sessionContext())
	require.NoError(t, err, "a user without a cart simply has an empty one")
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "u1", cart.UserID)
	assert.Zero(t, cart.Total)
}

func TestCartService_FetchDecodesWireCart(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"usuarioId":"u1","itens":[{"produtoId":"p1","nome":"Caneca","quantidade":2,"precoUnitario":19.9,"subtotal":39.8}],"total":39.8}`))
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	cart, err := carts.Fetch(sessionContext())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.ItemCount())
	assert.True(t, cart.ConsistentTotal())
}

func TestCartService_UpdateQuantityBelowOneSkipsNetwork(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	for _, q := range []int{0, -1, -10} {
		_, err := carts.UpdateQuantity(sessionContext(), "p1", q)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidQuantity), "quantity %d: got %v", q, err)
	}

	assert.Zero(t, backend.requests.Load(), "invalid quantities must be rejected before any backend call")
}

func TestCartService_AddItemRejectsInvalidInputLocally(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	_, err := carts.AddItem(sessionContext(), "", 1)
	assert.True(t, domain.IsValidationError(err))

	_, err = carts.AddItem(sessionContext(), "p1", 0)
	assert.True(t, domain.IsValidationError(err))

	assert.Zero(t, backend.requests.Load())
}

func TestCartService_AddItemUnknownProduct(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Produto não encontrado"}`))
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	_, err := carts.AddItem(sessionContext(), "missing", 1)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound), "got %v", err)
}

func TestCartService_ViewAppliesFilterWithoutChangingTotals(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"itens":[` +
			`{"produtoId":"p1","nome":"Caneca Azul","quantidade":1,"precoUnitario":10,"subtotal":10},` +
			`{"produtoId":"p2","nome":"Camiseta","quantidade":2,"precoUnitario":20,"subtotal":40}` +
			`],"total":50}`))
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	view, err := carts.View(sessionContext(), "caneca")
	require.NoError(t, err)

	assert.Len(t, view.Items, 1)
	assert.InDelta(t, 50, view.Total, 0.001, "filter must not shrink the total")
	assert.Equal(t, 3, view.ItemCount, "badge count reflects the full cart")
}

func TestCartService_ClearRequiresSession(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	err := carts.Clear(context.Background())
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
	assert.Zero(t, backend.requests.Load())

	require.NoError(t, carts.Clear(sessionContext()))
}

func TestCartService_ListAllForwardsForbidden(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Acesso negado"}`))
	})
	carts := NewCartService(backend.client(), slog.New(slog.DiscardHandler))

	_, err := carts.ListAll(sessionContext())
	require.Error(t, err)
	assert.Equal(t, domain.EFORBIDDEN, domain.ErrorCode(err))
	assert.Equal(t, "Acesso negado", domain.ErrorMessage(err))
}
