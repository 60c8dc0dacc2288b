package admin

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// UserHandler handles account administration routes.
type UserHandler struct {
	admin *service.AdminService
}

func NewUserHandler(admin *service.AdminService) *UserHandler {
	return &UserHandler{admin: admin}
}

type updateRoleRequest struct {
	Role string `json:"tipoUsuario" validate:"required"`
}

// List handles GET /admin/usuarios
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, users)
}

// UpdateRole handles PUT /admin/usuarios/{id}/tipo
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	user, err := h.admin.UpdateUserRole(r.Context(), r.PathValue("id"), req.Role)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, user)
}
