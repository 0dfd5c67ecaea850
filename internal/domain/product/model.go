// Package product provides the Product catalog. Products are referenced
// by fulfilment links; the fulfilment rules only consume existence lookups.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
)

// Product represents an item sold through the retail operation.
type Product struct {
	ID id.ID `db:"id" json:"id"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	Description *string `db:"description" json:"description,omitempty"`

	// Price is the unit price. Decimal, never float: money must not
	// accumulate binary rounding error.
	Price decimal.Decimal `db:"price" json:"price"`

	// Stock is the globally available quantity
	Stock int `db:"stock" json:"stock"`
}

// New creates a Product with a generated id.
func New(name string, price decimal.Decimal, stock int) *Product {
	return &Product{
		ID:    id.New(),
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

// Validate implements domain.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}
	if p.Stock < 0 {
		return apperror.NewValidation("stock must not be negative").
			WithDetail("field", "stock")
	}
	return nil
}
