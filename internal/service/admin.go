package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
)

// AdminService aggregates the administration views. Authorization lives with
// the backend: each call carries the caller's token and a non-admin gets the
// backend's 403 back unchanged.
type AdminService struct {
	client  *gateway.Client
	catalog *CatalogService
	carts   *CartService
	logger  *slog.Logger
}

func NewAdminService(client *gateway.Client, catalog *CatalogService, carts *CartService, logger *slog.Logger) *AdminService {
	return &AdminService{client: client, catalog: catalog, carts: carts, logger: logger}
}

// User is a store account as listed for administrators.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"tipoUsuario"`
}

// DashboardStats summarizes the store for the admin landing page.
type DashboardStats struct {
	ProductCount   int     `json:"totalProdutos"`
	OpenCartCount  int     `json:"totalCarrinhos"`
	OpenCartsValue float64 `json:"valorCarrinhos"`
}

type updateRoleRequest struct {
	Role string `json:"tipoUsuario"`
}

// Dashboard assembles the stats from the catalog and the cart list.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	products, err := s.catalog.List(ctx, "")
	if err != nil {
		return nil, err
	}
	carts, err := s.carts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{ProductCount: len(products)}
	for _, cart := range carts {
		if cart.IsEmpty() {
			continue
		}
		stats.OpenCartCount++
		stats.OpenCartsValue += cart.Total
	}
	return stats, nil
}

// ListUsers returns every store account.
func (s *AdminService) ListUsers(ctx context.Context) ([]User, error) {
	const op = "service.admin.list_users"

	var users []User
	if err := s.client.Get(ctx, op, "/usuarios", &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// UpdateUserRole promotes or demotes an account. Only the two known roles
// are accepted.
func (s *AdminService) UpdateUserRole(ctx context.Context, userID, role string) (*User, error) {
	const op = "service.admin.update_user_role"

	if userID == "" {
		return nil, domain.NewValidationError(op, "_id", "user id is required")
	}
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return nil, domain.NewValidationError(op, "tipoUsuario",
			fmt.Sprintf("tipoUsuario must be %q or %q", domain.RoleAdmin, domain.RoleCustomer))
	}

	var user User
	err := s.client.Put(ctx, op, fmt.Sprintf("/usuarios/%s/tipo", userID), updateRoleRequest{Role: role}, &user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user role updated",
		slog.String("user_id", userID),
		slog.String("role", role),
	)
	return &user, nil
}
