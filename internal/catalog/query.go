package catalog

import (
	"sort"
	"strings"
)

// UserFilter narrows a user listing. Zero values mean "no filter"; a Limit of
// zero or less does not truncate.
type UserFilter struct {
	Role  string
	Limit int
}

// ProductFilter narrows a product listing. Set filters combine with AND.
type ProductFilter struct {
	Category string
	InStock  *bool
}

// FilterUsers keeps users whose role equals f.Role ignoring case, then keeps
// the first f.Limit of them. Order is preserved and the input is not modified.
func FilterUsers(users []User, f UserFilter) []User {
	role := strings.ToLower(f.Role)

	out := make([]User, 0, len(users))
	for _, u := range users {
		if role != "" && strings.ToLower(u.Role) != role {
			continue
		}
		out = append(out, u)
	}

	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out
}

func FilterProducts(products []Product, f ProductFilter) []Product {
	category := strings.ToLower(f.Category)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FindUser returns the first user with the given id.
func FindUser(users []User, id int) (User, error) {
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func FindProduct(products []Product, id int) (Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

type Stats struct {
	TotalUsers      int            `json:"totalUsers"`
	TotalProducts   int            `json:"totalProducts"`
	UsersByRole     map[string]int `json:"usersByRole"`
	ProductsInStock int            `json:"productsInStock"`
	Categories      []string       `json:"categories"`
}

// Summarize aggregates the catalog. Categories are distinct and sorted.
func Summarize(users []User, products []Product) Stats {
	st := Stats{
		TotalUsers:    len(users),
		TotalProducts: len(products),
		UsersByRole:   make(map[string]int),
		Categories:    []string{},
	}

	for _, u := range users {
		st.UsersByRole[u.Role]++
	}

	seen := make(map[string]struct{})
	for _, p := range products {
		if p.InStock {
			st.ProductsInStock++
		}
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			st.Categories = append(st.Categories, p.Category)
		}
	}
	sort.Strings(st.Categories)

	return st
}
