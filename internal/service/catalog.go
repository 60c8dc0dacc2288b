package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vitrinedev/vitrine/internal/domain"
	"github.com/vitrinedev/vitrine/internal/gateway"
)

// CatalogService exposes the product catalog. Reads are open to everyone;
// writes go through the backend's admin endpoints and inherit its
// authorization.
type CatalogService struct {
	client *gateway.Client
	logger *slog.Logger
}

func NewCatalogService(client *gateway.Client, logger *slog.Logger) *CatalogService {
	return &CatalogService{client: client, logger: logger}
}

// List returns the catalog, optionally narrowed to products whose name
// contains the filter, case-insensitively. The filter runs locally over the
// fetched list.
func (s *CatalogService) List(ctx context.Context, filter string) ([]domain.Product, error) {
	const op = "service.catalog.list"

	var products []domain.Product
	if err := s.client.Get(ctx, op, "/produtos", &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	if filter == "" {
		return products, nil
	}

	needle := strings.ToLower(filter)
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Get returns one product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	const op = "service.catalog.get"

	if id == "" {
		return nil, domain.NewValidationError(op, "_id", "product id is required")
	}

	var product domain.Product
	if err := s.client.Get(ctx, op, fmt.Sprintf("/produtos/%s", id), &product); err != nil {
		if domain.ErrorCode(err) == domain.ENOTFOUND {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Create registers a new product. Fields are validated locally before the
// backend sees them.
func (s *CatalogService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const op = "service.catalog.create"

	if err := product.Validate(op); err != nil {
		return nil, err
	}

	var created domain.Product
	if err := s.client.Post(ctx, op, "/produtos", product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a product's editable fields.
func (s *CatalogService) Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	const op = "service.catalog.update"

	if id == "" {
		return nil, domain.NewValidationError(op, "_id", "product id is required")
	}
	if err := product.Validate(op); err != nil {
		return nil, err
	}

	var updated domain.Product
	if err := s.client.Put(ctx, op, fmt.Sprintf("/produtos/%s", id), product, &updated); err != nil {
		if domain.ErrorCode(err) == domain.ENOTFOUND {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a product from the catalog.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	const op = "service.catalog.delete"

	if id == "" {
		return domain.NewValidationError(op, "_id", "product id is required")
	}

	if err := s.client.Delete(ctx, op, fmt.Sprintf("/produtos/%s", id), nil); err != nil {
		if domain.ErrorCode(err) == domain.ENOTFOUND {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}
