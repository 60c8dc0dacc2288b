package routes

import (
	"github.com/vitrinedev/vitrine/internal/middleware"
	"github.com/vitrinedev/vitrine/internal/router"
)

// RegisterStorefrontRoutes registers the shopper-facing routes. The catalog
// and authentication routes are open; the cart and payment routes require a
// session.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Authentication
	r.Post("/login", deps.AuthHandler.Login)
	r.Post("/cadastro", deps.AuthHandler.Register)
	r.Post("/logout", deps.AuthHandler.Logout)

	// Product browsing
	r.Get("/produtos", deps.ProductHandler.List)
	r.Get("/produtos/{id}", deps.ProductHandler.Get)

	// Stripe publishable key for the browser
	r.Get("/config", deps.CheckoutHandler.Config)

	// Cart (session required)
	auth := r.Group(middleware.RequireAuth)
	auth.Get("/carrinho", deps.CartHandler.View)
	auth.Post("/adicionarItem", deps.CartHandler.Add)
	auth.Post("/removerItem", deps.CartHandler.Remove)
	auth.Put("/carrinho/item/quantidade", deps.CartHandler.UpdateQuantity)
	auth.Delete("/carrinho/{id}", deps.CartHandler.Clear)

	// Payment flow (session required)
	auth.Post("/create-payment-intent", deps.CheckoutHandler.CreateIntent)
	auth.Post("/criar-pagamento-cartao", deps.CheckoutHandler.PayCard)
	auth.Post("/confirmar-pagamento", deps.CheckoutHandler.Confirm)
}
