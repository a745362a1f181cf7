package products

import (
	"context"

	"github.com/acmelabs/storefront-api/internal/store"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
)

// Service exposes read operations over the products collection.
type Service interface {
	List(ctx context.Context, params ListParams) []store.Product
	Get(ctx context.Context, id int) (*store.Product, error)
}

// ListParams are optional filters. InStockOnly filters for in-stock
// products only when true; false means no stock filtering at all.
type ListParams struct {
	Category    *string
	InStockOnly bool
	Limit       *int
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) Service {
	return &service{store: s}
}

func (s *service) List(_ context.Context, params ListParams) []store.Product {
	products := s.store.Products()

	if params.Category != nil {
		filtered := make([]store.Product, 0, len(products))
		for _, p := range products {
			if store.MatchFold(p.Category, *params.Category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if params.InStockOnly {
		filtered := make([]store.Product, 0, len(products))
		for _, p := range products {
			if p.InStock {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return store.Truncate(products, params.Limit)
}

func (s *service) Get(_ context.Context, id int) (*store.Product, error) {
	p, ok := s.store.FindProduct(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	return &p, nil
}
