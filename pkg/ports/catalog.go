package ports

import (
	"github.com/google/uuid"

	"github.com/weikanglim/OrderBot/pkg/domain"
)

// Catalog provides product lookups. Implementations own the product data;
// dialogs never mutate it.
type Catalog interface {
	// ListProducts returns all products in catalog order.
	ListProducts() []domain.Product

	// FindProduct returns products whose name contains the search string,
	// case-insensitively, in catalog order.
	FindProduct(search string) []domain.Product

	// GetProduct returns the product with the given ID.
	GetProduct(id uuid.UUID) (domain.Product, bool)
}
