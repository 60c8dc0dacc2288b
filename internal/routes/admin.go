package routes

import (
	"github.com/vitrinedev/vitrine/internal/middleware"
	"github.com/vitrinedev/vitrine/internal/router"
)

// RegisterAdminRoutes registers the administration routes. The RequireAdmin
// gate keeps non-admins out of the surface; the backend independently
// authorizes every call with the caller's token.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	admin := r.Group(middleware.RequireAdmin)

	// Dashboard
	admin.Get("/admin/dashboard", deps.DashboardHandler.Stats)

	// Catalog management
	admin.Post("/produtos", deps.ProductHandler.Create)
	admin.Put("/produtos/{id}", deps.ProductHandler.Update)
	admin.Delete("/produtos/{id}", deps.ProductHandler.Delete)

	// Cart oversight
	admin.Get("/carrinhos", deps.DashboardHandler.ListCarts)

	// Account management
	admin.Get("/admin/usuarios", deps.UserHandler.List)
	admin.Put("/admin/usuarios/{id}/tipo", deps.UserHandler.UpdateRole)

	// Admin-access solicitations: any signed-in customer may apply, only an
	// administrator reviews.
	auth := r.Group(middleware.RequireAuth)
	auth.Post("/admin/solicitar-acesso", deps.AccessHandler.Request)
	admin.Get("/admin/solicitacoes", deps.AccessHandler.List)
	admin.Patch("/admin/solicitacoes/{id}/aprovar", deps.AccessHandler.Approve)
	admin.Delete("/admin/solicitacoes/{id}", deps.AccessHandler.Reject)
}
