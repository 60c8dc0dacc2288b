// Package service implements the storefront operations on top of the
// commerce backend client. Services own the request/response shapes of the
// backend wire protocol; handlers only see domain types and views.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
)

// CartService reads and mutates the signed-in user's cart. After every
// mutation the backend's response is the authoritative cart state; nothing
// is patched locally.
type CartService struct {
	client *gateway.Client
	logger *slog.Logger
}

func NewCartService(client *gateway.Client, logger *slog.Logger) *CartService {
	return &CartService{client: client, logger: logger}
}

// CartView is the cart as presented to the storefront: optionally filtered
// lines plus the unfiltered totals, so the badge count and checkout total
// never shrink just because a filter is active.
type CartView struct {
	Items     []domain.CartItem `json:"itens"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"totalItens"`
}

type addItemRequest struct {
	ProductID string `json:"produtoId"`
	Quantity  int    `json:"quantidade"`
}

type removeItemRequest struct {
	ProductID string `json:"produtoId"`
}

type updateQuantityRequest struct {
	ProductID string `json:"produtoId"`
	Quantity  int    `json:"quantidade"`
}

// Fetch returns the current cart. A backend 404 means the user simply has no
// cart yet and maps to an empty cart, not an error.
func (s *CartService) Fetch(ctx context.Context) (*domain.Cart, error) {
	const op = "service.cart.fetch"

	var cart domain.Cart
	if err := s.client.Get(ctx, op, "/carrinho", &cart); err != nil {
		if domain.ErrorCode(err) == domain.ENOTFOUND {
			sess := domain.SessionFromContext(ctx)
			userID := ""
			if sess != nil {
				userID = sess.UserID
			}
			return domain.EmptyCart(userID), nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return &cart, nil
}

// View fetches the cart and applies the display filter. The filter is a pure
// view transform: totals and the badge count always reflect the full cart.
func (s *CartService) View(ctx context.Context, filter string) (*CartView, error) {
	cart, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Items:     cart.FilterItems(filter),
		Total:     cart.Total,
		ItemCount: cart.ItemCount(),
	}, nil
}

// AddItem adds quantity of a product to the cart. The backend merges repeat
// adds of the same product into one line.
func (s *CartService) AddItem(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	const op = "service.cart.add_item"

	if productID == "" {
		return nil, domain.NewValidationError(op, "produtoId", "produtoId is required")
	}
	if quantity < 1 {
		return nil, domain.NewValidationError(op, "quantidade", "quantidade must be at least 1")
	}

	var cart domain.Cart
	err := s.client.Post(ctx, op, "/adicionarItem", addItemRequest{ProductID: productID, Quantity: quantity}, &cart)
	if err != nil {
		if domain.ErrorCode(err) == domain.ENOTFOUND {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below one
// are rejected locally; no backend call is made for them.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (*domain.Cart, error) {
	const op = "service.cart.update_quantity"

	if productID == "" {
		return nil, domain.NewValidationError(op, "produtoId", "produtoId is required")
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	var cart domain.Cart
	err := s.client.Put(ctx, op, "/carrinho/item/quantidade", updateQuantityRequest{ProductID: productID, Quantity: quantity}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem deletes one line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, productID string) (*domain.Cart, error) {
	const op = "service.cart.remove_item"

	if productID == "" {
		return nil, domain.NewValidationError(op, "produtoId", "produtoId is required")
	}

	var cart domain.Cart
	err := s.client.Post(ctx, op, "/removerItem", removeItemRequest{ProductID: productID}, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Clear empties the session user's cart. Called after a successful payment
// and from the cart page.
func (s *CartService) Clear(ctx context.Context) error {
	const op = "service.cart.clear"

	sess := domain.SessionFromContext(ctx)
	if sess == nil {
		return domain.ErrSessionNotFound
	}
	return s.client.Delete(ctx, op, fmt.Sprintf("/carrinho/%s", sess.UserID), nil)
}

// ListAll returns every cart in the store. Admin only; a backend 403 for a
// non-admin caller passes through untouched.
func (s *CartService) ListAll(ctx context.Context) ([]domain.Cart, error) {
	const op = "service.cart.list_all"

	var carts []domain.Cart
	if err := s.client.Get(ctx, op, "/carrinhos", &carts); err != nil {
		return nil, err
	}
	if carts == nil {
		carts = []domain.Cart{}
	}
	return carts, nil
}
