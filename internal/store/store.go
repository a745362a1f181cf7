package store

import (
	"sync"
	"time"
)

// Store owns the in-memory sample collections for the lifetime of the
// process. Products and orders are read-only after construction; the users
// collection supports append-only creates, guarded by a mutex so concurrent
// creates get distinct sequential ids.
type Store struct {
	mu       sync.Mutex
	users    []User
	products []Product
	orders   []Order
}

// New builds an isolated store from the given collections, filling in the
// defaulted fields (timestamps, descriptions, stock quantities) the same way
// the seed data does. Tests construct their own instances this way.
func New(users []User, products []Product, orders []Order) *Store {
	now := time.Now()

	s := &Store{
		users:    make([]User, len(users)),
		products: make([]Product, len(products)),
		orders:   make([]Order, len(orders)),
	}
	for i, u := range users {
		u.applyDefaults(now)
		s.users[i] = u
	}
	for i, p := range products {
		p.applyDefaults()
		s.products[i] = p
	}
	for i, o := range orders {
		o.applyDefaults(now)
		s.orders[i] = o
	}
	return s
}

// Users returns a snapshot of the users collection in insertion order.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Products returns the products collection in original order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Orders returns the orders collection in original order.
func (s *Store) Orders() []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// AppendUser assigns the next id, applies timestamp defaults, appends the
// record and returns it as stored. The id is max existing id + 1, or 1 when
// the collection is empty.
func (s *Store) AppendUser(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, existing := range s.users {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	u.ID = next
	u.applyDefaults(time.Now())
	s.users = append(s.users, u)
	return u
}

// FindUser scans for a user by id.
func (s *Store) FindUser(id int) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindProduct scans for a product by id.
func (s *Store) FindProduct(id int) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindOrder scans for an order by id.
func (s *Store) FindOrder(id int) (Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
