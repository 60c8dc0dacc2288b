package admin

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// DashboardHandler serves the admin landing page data.
type DashboardHandler struct {
	admin *service.AdminService
	carts *service.CartService
}

func NewDashboardHandler(admin *service.AdminService, carts *service.CartService) *DashboardHandler {
	return &DashboardHandler{admin: admin, carts: carts}
}

// Stats handles GET /admin/dashboard
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Dashboard(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, stats)
}

// ListCarts handles GET /carrinhos
func (h *DashboardHandler) ListCarts(w http.ResponseWriter, r *http.Request) {
	carts, err := h.carts.ListAll(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, carts)
}
