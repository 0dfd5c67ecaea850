// Package store provides the Store catalog. Stores are retail outlets
// supplied through fulfilment links; their CRUD lives here, the fulfilment
// rules only consume existence lookups.
package store

import (
	"context"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
)

// Store represents a retail outlet.
type Store struct {
	ID id.ID `db:"id" json:"id"`

	// Name is the display name, unique per operation
	Name string `db:"name" json:"name"`

	// QuantityProductsInStock is the total product count currently on shelf
	QuantityProductsInStock int `db:"quantity_products_in_stock" json:"quantityProductsInStock"`
}

// New creates a Store with a generated id.
func New(name string, quantityProductsInStock int) *Store {
	return &Store{
		ID:                      id.New(),
		Name:                    name,
		QuantityProductsInStock: quantityProductsInStock,
	}
}

// Validate implements domain.Validatable.
func (s *Store) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if s.QuantityProductsInStock < 0 {
		return apperror.NewValidation("quantity of products in stock must not be negative").
			WithDetail("field", "quantityProductsInStock")
	}
	return nil
}
