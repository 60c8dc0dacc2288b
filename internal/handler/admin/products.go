// Package admin holds the administrator-only route handlers. The guards in
// front of these routes are a convenience; the backend re-checks the
// caller's role on every call.
package admin

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// ProductHandler handles catalog management routes.
type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productRequest struct {
	Name        string  `json:"nome" validate:"required"`
	Price       float64 `json:"preco" validate:"gte=0"`
	PhotoURL    string  `json:"urlfoto"`
	Description string  `json:"descricao"`
}

func (req *productRequest) toProduct() *domain.Product {
	return &domain.Product{
		Name:        req.Name,
		Price:       req.Price,
		PhotoURL:    req.PhotoURL,
		Description: req.Description,
	}
}

// Create handles POST /produtos
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	created, err := h.catalog.Create(r.Context(), req.toProduct())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, created)
}

// Update handles PUT /produtos/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := handler.Decode(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	updated, err := h.catalog.Update(r.Context(), r.PathValue("id"), req.toProduct())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /produtos/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
