package catalog

import (
	"context"
	"slices"
)

// MemStore is a fixed snapshot built once at startup. It is never mutated,
// so concurrent reads need no locking.
type MemStore struct {
	users    []User
	products []Product
}

func NewMemStore() *MemStore {
	return NewMemStoreWith(seedUsers(), seedProducts())
}

// NewMemStoreWith snapshots the given collections; later changes to the
// arguments do not leak into the store.
func NewMemStoreWith(users []User, products []Product) *MemStore {
	return &MemStore{
		users:    append(make([]User, 0, len(users)), users...),
		products: append(make([]Product, 0, len(products)), products...),
	}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListUsers(ctx context.Context) ([]User, error) {
	return slices.Clone(s.users), nil
}

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	return slices.Clone(s.products), nil
}

func seedUsers() []User {
	return []User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Role: "admin"},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com", Role: "user"},
		{ID: 3, Name: "Carol Brown", Email: "carol@example.com", Role: "user"},
	}
}

func seedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Category: "Electronics", InStock: true},
		{ID: 2, Name: "Book", Price: 19.99, Category: "Education", InStock: true},
		{ID: 3, Name: "Chair", Price: 149.99, Category: "Furniture", InStock: false},
	}
}
