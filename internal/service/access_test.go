package service

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
)

func newAccessService(backend *testBackend) *AdminService {
	logger := slog.New(slog.DiscardHandler)
	client := backend.client()
	catalog := NewCatalogService(client, logger)
	carts := NewCartService(client, logger)
	return NewAdminService(client, catalog, carts, logger)
}

func TestAdminService_RequestAccess(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/solicitar-acesso", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"s1","usuarioId":"u1","nome":"Ana","email":"ana@loja.com","status":"pendente","dataSolicitacao":"2026-08-31T12:00:00Z"}`))
	})
	admin := newAccessService(backend)

	req, err := admin.RequestAccess(sessionContext())
	require.NoError(t, err)
	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, AccessPending, req.Status)
}

func TestAdminService_RequestAccessTwiceConflicts(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Solicitação já enviada"}`))
	})
	admin := newAccessService(backend)

	_, err := admin.RequestAccess(sessionContext())
	require.Error(t, err)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	assert.Equal(t, "Solicitação já enviada", domain.ErrorMessage(err))
}

func TestAdminService_ListAccessRequests(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/solicitacoes", r.URL.Path)
		w.Write([]byte(`[
			{"_id":"s1","usuarioId":"u1","nome":"Ana","email":"ana@loja.com","status":"pendente","dataSolicitacao":"2026-08-30T09:00:00Z"},
			{"_id":"s2","usuarioId":"u2","nome":"Bia","email":"bia@loja.com","status":"aprovado","dataSolicitacao":"2026-08-29T09:00:00Z"},
			{"_id":"s3","usuarioId":"u3","nome":"Caio","email":"caio@loja.com","status":"rejeitado","dataSolicitacao":"2026-08-28T09:00:00Z"}
		]`))
	})
	admin := newAccessService(backend)

	requests, err := admin.ListAccessRequests(sessionContext())
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "Ana", requests[0].Name)
	assert.Equal(t, AccessPending, requests[0].Status)
	assert.Equal(t, AccessApproved, requests[1].Status)
	assert.Equal(t, AccessRejected, requests[2].Status)
}

func TestAdminService_ListAccessRequestsEmptyBody(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})
	admin := newAccessService(backend)

	requests, err := admin.ListAccessRequests(sessionContext())
	require.NoError(t, err)
	assert.NotNil(t, requests)
	assert.Empty(t, requests)
}

func TestAdminService_ApproveAccessRequest(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/admin/solicitacoes/u1/aprovar", r.URL.Path)
		w.Write([]byte(`{"message":"ok"}`))
	})
	admin := newAccessService(backend)

	require.NoError(t, admin.ApproveAccessRequest(sessionContext(), "u1"))
}

func TestAdminService_ApproveWithoutUserIDSkipsNetwork(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	admin := newAccessService(backend)

	err := admin.ApproveAccessRequest(sessionContext(), "")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Zero(t, backend.requests.Load())
}

func TestAdminService_RejectAccessRequest(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/admin/solicitacoes/u1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	admin := newAccessService(backend)

	require.NoError(t, admin.RejectAccessRequest(sessionContext(), "u1"))
}

func TestAdminService_ReviewRequiresAdminBackendSideToo(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Acesso negado"}`))
	})
	admin := newAccessService(backend)

	_, err := admin.ListAccessRequests(sessionContext())
	require.Error(t, err)
	assert.Equal(t, domain.EFORBIDDEN, domain.ErrorCode(err))
	assert.False(t, errors.Is(err, gateway.ErrAuthExpired))
}
