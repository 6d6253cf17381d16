package catalog

import (
	"context"
	"errors"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
)

// Store is read-only access to the catalog. Implementations return slices the
// caller owns.
type Store interface {
	ListUsers(ctx context.Context) ([]User, error)
	ListProducts(ctx context.Context) ([]Product, error)
	Ping(ctx context.Context) error
}
