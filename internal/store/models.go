package store

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// User is a sample account record. Role is free-form; the known values are
// admin, user, manager and moderator but nothing validates the set.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, "admin")
}

// Product is a sample catalog record.
type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	InStock       bool            `json:"in_stock"`
	Description   string          `json:"description"`
	StockQuantity int             `json:"stock_quantity"`
}

// Order references a user and one or more products by id. References are
// not enforced against the collections; lookups that miss simply yield no
// join target.
type Order struct {
	ID          int             `json:"id"`
	UserID      int             `json:"user_id"`
	ProductIDs  []int           `json:"product_ids"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Order statuses used by the sample data. The set is open like roles.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
)

func (u *User) applyDefaults(now time.Time) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now.AddDate(0, 0, -(1 + rand.Intn(365)))
	}
	if u.LastLogin.IsZero() {
		u.LastLogin = now.Add(-time.Duration(1+rand.Intn(72)) * time.Hour)
	}
}

func (p *Product) applyDefaults() {
	if p.Description == "" {
		p.Description = fmt.Sprintf("High-quality %s in the %s category",
			strings.ToLower(p.Name), strings.ToLower(p.Category))
	}
	if p.StockQuantity == 0 && p.InStock {
		p.StockQuantity = 1 + rand.Intn(100)
	}
}

func (o *Order) applyDefaults(now time.Time) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now.AddDate(0, 0, -rand.Intn(31))
	}
}
