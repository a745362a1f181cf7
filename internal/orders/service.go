package orders

import (
	"context"

	"github.com/acmelabs/storefront-api/internal/store"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
)

// Service exposes read operations over the orders collection. Every result
// is enriched with its referenced user and products before it leaves the
// service.
type Service interface {
	List(ctx context.Context, params ListParams) []Enriched
	Get(ctx context.Context, id int) (*Enriched, error)
}

// ListParams are optional filters; user id and status match exactly.
type ListParams struct {
	UserID *int
	Status *string
	Limit  *int
}

// Enriched is an order with its referenced records embedded. A dangling
// user reference yields a null user; dangling product ids are skipped.
type Enriched struct {
	store.Order
	User     *store.User     `json:"user"`
	Products []store.Product `json:"products"`
}

type service struct {
	store *store.Store
}

func NewService(s *store.Store) Service {
	return &service{store: s}
}

func (s *service) List(_ context.Context, params ListParams) []Enriched {
	orders := s.store.Orders()

	if params.UserID != nil {
		filtered := make([]store.Order, 0, len(orders))
		for _, o := range orders {
			if o.UserID == *params.UserID {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	if params.Status != nil {
		filtered := make([]store.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == *params.Status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	orders = store.Truncate(orders, params.Limit)

	enriched := make([]Enriched, len(orders))
	for i, o := range orders {
		enriched[i] = s.enrich(o)
	}
	return enriched
}

func (s *service) Get(_ context.Context, id int) (*Enriched, error) {
	o, ok := s.store.FindOrder(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	e := s.enrich(o)
	return &e, nil
}

// enrich is a tolerant join: missing references never fail, they just
// leave the embedded field null or absent from the products list.
func (s *service) enrich(o store.Order) Enriched {
	e := Enriched{Order: o, Products: make([]store.Product, 0, len(o.ProductIDs))}

	if u, ok := s.store.FindUser(o.UserID); ok {
		e.User = &u
	}
	for _, pid := range o.ProductIDs {
		if p, ok := s.store.FindProduct(pid); ok {
			e.Products = append(e.Products, p)
		}
	}
	return e
}
