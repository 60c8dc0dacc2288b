package service

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrinedev/vitrine/internal/domain"
)

func TestCatalogService_ListWithFilter(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"p1","nome":"Caneca Azul","preco":19.9},{"_id":"p2","nome":"Camiseta","preco":49.5}]`))
	})
	catalog := NewCatalogService(backend.client(), slog.New(slog.DiscardHandler))

	all, err := catalog.List(sessionContext(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := catalog.List(sessionContext(), "CANECA")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "p1", matched[0].ID)
}

func TestCatalogService_CreateValidatesLocally(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	catalog := NewCatalogService(backend.client(), slog.New(slog.DiscardHandler))

	_, err := catalog.Create(sessionContext(), &domain.Product{Name: "", Price: 10})
	assert.True(t, domain.IsValidationError(err))

	_, err = catalog.Create(sessionContext(), &domain.Product{Name: "Caneca", Price: -1})
	assert.True(t, domain.IsValidationError(err))

	assert.Zero(t, backend.requests.Load(), "invalid products never reach the backend")
}

func TestCatalogService_UpdateUnknownProduct(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	catalog := NewCatalogService(backend.client(), slog.New(slog.DiscardHandler))

	_, err := catalog.Update(sessionContext(), "missing", &domain.Product{Name: "Caneca", Price: 10})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogService_DeleteForwardsForbidden(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	catalog := NewCatalogService(backend.client(), slog.New(slog.DiscardHandler))

	err := catalog.Delete(sessionContext(), "p1")
	assert.Equal(t, domain.EFORBIDDEN, domain.ErrorCode(err))
}
