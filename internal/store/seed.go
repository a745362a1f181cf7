package store

import "github.com/shopspring/decimal"

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Seed returns a store populated with the fixed sample dataset.
func Seed() *Store {
	users := []User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Role: "admin"},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Role: "user"},
		{ID: 3, Name: "Carol Brown", Email: "carol@example.com", Role: "user"},
		{ID: 4, Name: "David Wilson", Email: "david@example.com", Role: "manager"},
		{ID: 5, Name: "Eva Martinez", Email: "eva@example.com", Role: "user"},
		{ID: 6, Name: "Frank Chen", Email: "frank@example.com", Role: "admin"},
		{ID: 7, Name: "Grace Kim", Email: "grace@example.com", Role: "user"},
		{ID: 8, Name: "Henry Davis", Email: "henry@example.com", Role: "manager"},
	}

	products := []Product{
		{ID: 1, Name: "MacBook Pro", Price: money("1299.99"), Category: "Electronics", InStock: true, Description: "Latest Apple laptop with M1 chip", StockQuantity: 15},
		{ID: 2, Name: "Python Programming Book", Price: money("39.99"), Category: "Education", InStock: true, Description: "Comprehensive guide to Python", StockQuantity: 25},
		{ID: 3, Name: "Ergonomic Office Chair", Price: money("249.99"), Category: "Furniture", InStock: false, Description: "Comfortable chair for long work hours"},
		{ID: 4, Name: "Wireless Headphones", Price: money("199.99"), Category: "Electronics", InStock: true, Description: "Noise-cancelling Bluetooth headphones", StockQuantity: 8},
		{ID: 5, Name: "Standing Desk", Price: money("399.99"), Category: "Furniture", InStock: true, Description: "Adjustable height standing desk", StockQuantity: 5},
		{ID: 6, Name: "Web Development Course", Price: money("29.99"), Category: "Education", InStock: true, Description: "Learn full-stack web development", StockQuantity: 12},
		{ID: 7, Name: "Mechanical Keyboard", Price: money("89.99"), Category: "Electronics", InStock: true, Description: "RGB backlit gaming keyboard", StockQuantity: 20},
		{ID: 8, Name: "Monitor Stand", Price: money("49.99"), Category: "Furniture", InStock: true, Description: "Adjustable monitor stand", StockQuantity: 30},
	}

	orders := []Order{
		{ID: 1, UserID: 1, ProductIDs: []int{1, 2}, TotalAmount: money("1339.98"), Status: OrderStatusCompleted},
		{ID: 2, UserID: 2, ProductIDs: []int{4}, TotalAmount: money("199.99"), Status: OrderStatusShipped},
		{ID: 3, UserID: 3, ProductIDs: []int{2, 6}, TotalAmount: money("69.98"), Status: OrderStatusCompleted},
		{ID: 4, UserID: 1, ProductIDs: []int{7}, TotalAmount: money("89.99"), Status: OrderStatusProcessing},
		{ID: 5, UserID: 4, ProductIDs: []int{5, 8}, TotalAmount: money("449.98"), Status: OrderStatusCompleted},
		{ID: 6, UserID: 2, ProductIDs: []int{1}, TotalAmount: money("1299.99"), Status: OrderStatusPending},
		{ID: 7, UserID: 5, ProductIDs: []int{4, 7}, TotalAmount: money("289.98"), Status: OrderStatusShipped},
		{ID: 8, UserID: 3, ProductIDs: []int{2}, TotalAmount: money("39.99"), Status: OrderStatusCompleted},
	}

	return New(users, products, orders)
}
