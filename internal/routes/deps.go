package routes

import (
	"github.com/vitrinedev/vitrine/internal/handler/admin"
	"github.com/vitrinedev/vitrine/internal/handler/storefront"
)

// StorefrontDeps contains the handlers for shopper-facing routes.
type StorefrontDeps struct {
	AuthHandler     *storefront.AuthHandler
	ProductHandler  *storefront.ProductHandler
	CartHandler     *storefront.CartHandler
	CheckoutHandler *storefront.CheckoutHandler
}

// AdminDeps contains the handlers for administration routes.
type AdminDeps struct {
	ProductHandler   *admin.ProductHandler
	UserHandler      *admin.UserHandler
	DashboardHandler *admin.DashboardHandler
	AccessHandler    *admin.AccessHandler
}
