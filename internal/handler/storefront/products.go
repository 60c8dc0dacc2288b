package storefront

import (
	"net/http"

	"github.com/vitrinedev/vitrine/internal/handler"
	"github.com/vitrinedev/vitrine/internal/service"
)

// ProductHandler serves the public catalog routes.
type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /produtos
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filtro")

	products, err := h.catalog.List(r.Context(), filter)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, products)
}

// Get handles GET /produtos/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, product)
}
