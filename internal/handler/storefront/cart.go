package storefront

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// CartHandler handles the cart routes. All of them require a session.
type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addItemRequest struct {
	ProductID string `json:"produtoId" validate:"required"`
	Quantity  int    `json:"quantidade"`
}

type removeItemRequest struct {
	ProductID string `json:"produtoId" validate:"required"`
}

type updateQuantityRequest struct {
	ProductID string `json:"produtoId" validate:"required"`
	Quantity  int    `json:"quantidade"`
}

// View handles GET /carrinho
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filtro")

	view, err := h.carts.View(r.Context(), filter)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, view)
}

// Add handles POST /adicionarItem
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.carts.AddItem(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, cart)
}

// UpdateQuantity handles PUT /carrinho/item/quantidade
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, cart)
}

// Remove handles POST /removerItem
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), req.ProductID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, cart)
}

// Clear handles DELETE /carrinho/{id}. The path id must be the session
// user's own; clearing someone else's cart is an admin concern that lives
// on the backend.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := domain.SessionFromContext(r.Context())
	if sess == nil {
		handler.RespondError(w, r, domain.ErrSessionNotFound)
		return
	}
	if id := r.PathValue("id"); id != sess.UserID {
		handler.RespondError(w, r, domain.Forbidden("handler.cart.clear", "You can only clear your own cart"))
		return
	}

	if err := h.carts.Clear(r.Context()); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
