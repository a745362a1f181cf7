package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmelabs/storefront-api/internal/store"
	"github.com/acmelabs/storefront-api/pkg/sysinfo"
)

type stubProvider struct {
	snap sysinfo.Snapshot
	err  error
}

func (s *stubProvider) Snapshot(context.Context) (sysinfo.Snapshot, error) {
	return s.snap, s.err
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestStore() *store.Store {
	users := []store.User{
		{ID: 1, Name: "A", Email: "a@example.com", Role: "admin"},
		{ID: 2, Name: "B", Email: "b@example.com", Role: "user"},
		{ID: 3, Name: "C", Email: "c@example.com", Role: "user"},
	}
	products := []store.Product{
		{ID: 1, Name: "P1", Price: money("10"), Category: "Electronics", InStock: true},
		{ID: 2, Name: "P2", Price: money("20"), Category: "Electronics", InStock: true},
		{ID: 3, Name: "P3", Price: money("30"), Category: "Furniture", InStock: true},
		{ID: 4, Name: "P4", Price: money("40"), Category: "Furniture", InStock: false},
	}
	orders := []store.Order{
		{ID: 1, UserID: 1, ProductIDs: []int{1}, TotalAmount: money("100.50"), Status: "completed"},
		{ID: 2, UserID: 2, ProductIDs: []int{2}, TotalAmount: money("49.50"), Status: "completed"},
		{ID: 3, UserID: 2, ProductIDs: []int{3}, TotalAmount: money("30.00"), Status: "pending"},
		{ID: 4, UserID: 3, ProductIDs: []int{4}, TotalAmount: money("40.00"), Status: "shipped"},
	}
	return store.New(users, products, orders)
}

func TestOverviewAggregates(t *testing.T) {
	provider := &stubProvider{snap: sysinfo.Snapshot{CPUPercent: 12.5, MemoryPercent: 40, DiskPercent: 55}}
	svc := NewService(newTestStore(), provider)

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.Users.Total)
	assert.Equal(t, map[string]int{"admin": 1, "user": 2}, got.Users.ByRole)

	assert.Equal(t, 4, got.Products.Total)
	assert.Equal(t, 3, got.Products.InStock)
	assert.Equal(t, 1, got.Products.OutOfStock)
	assert.Equal(t, map[string]int{"Electronics": 2, "Furniture": 2}, got.Products.ByCategory)
	assert.Equal(t, []string{"Electronics", "Furniture"}, got.Products.Categories)

	assert.Equal(t, 4, got.Orders.Total)
	assert.True(t, got.Revenue.Total.Equal(money("150.00")), "completed revenue, got %s", got.Revenue.Total)
	assert.Equal(t, 2, got.Revenue.CompletedOrders)
	assert.Equal(t, 1, got.Revenue.PendingOrders)
	assert.True(t, got.Revenue.AverageOrderValue.Equal(money("75.00")))

	assert.Equal(t, 12.5, got.System.CPUPercent)
}

func TestOverviewNoCompletedOrders(t *testing.T) {
	s := store.New(nil, nil, []store.Order{
		{ID: 1, UserID: 1, ProductIDs: []int{1}, TotalAmount: money("10"), Status: "pending"},
	})
	svc := NewService(s, &stubProvider{})

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Revenue.Total.IsZero())
	assert.True(t, got.Revenue.AverageOrderValue.IsZero())
	assert.Equal(t, 1, got.Revenue.PendingOrders)
}

func TestOverviewProviderFailure(t *testing.T) {
	svc := NewService(newTestStore(), &stubProvider{err: errors.New("probe failed")})
	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}
