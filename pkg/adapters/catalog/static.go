// Package catalog provides the in-memory product catalog.
package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Static implements ports.Catalog over a fixed product list. Products are
// assigned IDs at construction and never mutated afterwards.
type Static struct {
	products []domain.Product
}

// NewStatic creates a catalog from the given products, assigning IDs to any
// product without one. With no arguments it serves the default menu.
func NewStatic(products ...domain.Product) *Static {
	if len(products) == 0 {
		products = defaultMenu()
	}
	owned := make([]domain.Product, len(products))
	copy(owned, products)
	for i := range owned {
		if owned[i].ID == uuid.Nil {
			owned[i].ID = uuid.New()
		}
	}
	return &Static{products: owned}
}

// ListProducts returns all products in catalog order.
func (s *Static) ListProducts() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindProduct returns products whose name contains the search string,
// case-insensitively, in catalog order.
func (s *Static) FindProduct(search string) []domain.Product {
	needle := strings.ToLower(search)
	var matches []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

// GetProduct returns the product with the given ID.
func (s *Static) GetProduct(id uuid.UUID) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func defaultMenu() []domain.Product {
	return []domain.Product{
		{
			Name:        "Hamburger",
			Description: "Contains 330 calories per serving.",
			Price:       1.50,
		},
		{
			Name:        "Cheeseburger",
			Description: "Contains 400 calories per serving.",
			Price:       2.50,
		},
		{
			Name:        "Fries",
			Description: "Contains 150 calories per serving.",
			Price:       1.00,
		},
		{
			Name:        "Drink",
			Description: "Contains 200 calories per serving.",
			Price:       1.00,
		},
	}
}
