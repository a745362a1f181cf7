package stats

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/acmelabs/storefront-api/internal/store"
	"github.com/acmelabs/storefront-api/pkg/sysinfo"
)

// Service aggregates collection statistics and the host snapshot.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type Overview struct {
	Users    UserStats        `json:"users"`
	Products ProductStats     `json:"products"`
	Orders   OrderStats       `json:"orders"`
	Revenue  RevenueStats     `json:"revenue"`
	System   sysinfo.Snapshot `json:"system"`
}

type UserStats struct {
	Total  int            `json:"total"`
	ByRole map[string]int `json:"by_role"`
}

type ProductStats struct {
	Total      int            `json:"total"`
	InStock    int            `json:"in_stock"`
	OutOfStock int            `json:"out_of_stock"`
	ByCategory map[string]int `json:"by_category"`
	Categories []string       `json:"categories"`
}

type OrderStats struct {
	Total int `json:"total"`
}

type RevenueStats struct {
	Total             decimal.Decimal `json:"total"`
	CompletedOrders   int             `json:"completed_orders"`
	PendingOrders     int             `json:"pending_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type service struct {
	store   *store.Store
	sysinfo sysinfo.Provider
}

func NewService(s *store.Store, provider sysinfo.Provider) Service {
	return &service{store: s, sysinfo: provider}
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	snap, err := s.sysinfo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{System: snap}

	users := s.store.Users()
	overview.Users = UserStats{Total: len(users), ByRole: map[string]int{}}
	for _, u := range users {
		overview.Users.ByRole[u.Role]++
	}

	products := s.store.Products()
	overview.Products = ProductStats{Total: len(products), ByCategory: map[string]int{}}
	for _, p := range products {
		overview.Products.ByCategory[p.Category]++
		if p.InStock {
			overview.Products.InStock++
		} else {
			overview.Products.OutOfStock++
		}
	}
	for category := range overview.Products.ByCategory {
		overview.Products.Categories = append(overview.Products.Categories, category)
	}
	sort.Strings(overview.Products.Categories)

	orders := s.store.Orders()
	overview.Orders = OrderStats{Total: len(orders)}
	revenue := RevenueStats{Total: decimal.Zero, AverageOrderValue: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case store.OrderStatusCompleted:
			revenue.Total = revenue.Total.Add(o.TotalAmount)
			revenue.CompletedOrders++
		case store.OrderStatusPending:
			revenue.PendingOrders++
		}
	}
	if revenue.CompletedOrders > 0 {
		revenue.AverageOrderValue = revenue.Total.
			Div(decimal.NewFromInt(int64(revenue.CompletedOrders))).
			Round(2)
	}
	overview.Revenue = revenue

	return overview, nil
}
