package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Product is an immutable catalog entry. Instances are owned by the catalog
// and are never mutated by dialogs; orders hold copies.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

// String renders the product the way it appears in cart summaries.
func (p Product) String() string {
	return fmt.Sprintf("%s : $%.2f", p.Name, p.Price)
}

// ExtendedDescription renders the full menu listing for a product.
func (p Product) ExtendedDescription() string {
	return fmt.Sprintf("%s. %s Cost: %.2f", p.Name, p.Description, p.Price)
}
