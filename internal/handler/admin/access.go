package admin

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// AccessHandler handles the admin-access solicitation routes. Filing a
// request takes any signed-in account; reviewing takes an administrator.
type AccessHandler struct {
	admin *service.AdminService
}

func NewAccessHandler(admin *service.AdminService) *AccessHandler {
	return &AccessHandler{admin: admin}
}

// Request handles POST /admin/solicitar-acesso
func (h *AccessHandler) Request(w http.ResponseWriter, r *http.Request) {
	if _, err := h.admin.RequestAccess(r.Context()); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "Solicitação enviada com sucesso",
	})
}

// List handles GET /admin/solicitacoes
func (h *AccessHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.admin.ListAccessRequests(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, requests)
}

// Approve handles PATCH /admin/solicitacoes/{id}/aprovar
func (h *AccessHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.ApproveAccessRequest(r.Context(), r.PathValue("id")); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Solicitação aprovada com sucesso",
	})
}

// Reject handles DELETE /admin/solicitacoes/{id}
func (h *AccessHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.RejectAccessRequest(r.Context(), r.PathValue("id")); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
