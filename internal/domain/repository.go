// Package domain provides the generic repository and service types shared
// by the catalog entities (stores, products).
package domain

import (
	"context"

	"fulfilment/internal/core/id"
)

// Validatable is implemented by every entity with structural invariants.
type Validatable interface {
	Validate(ctx context.Context) error
}

// CatalogRepository defines CRUD operations for catalog entities.
type CatalogRepository[T Validatable] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID; apperror.CodeNotFound when absent
	GetByID(ctx context.Context, entityID id.ID) (T, error)

	// Update modifies an existing entity
	Update(ctx context.Context, entity T) error

	// Delete removes the entity
	Delete(ctx context.Context, entityID id.ID) error

	// List retrieves all entities
	List(ctx context.Context) ([]T, error)

	// ExistsByID checks if entity with given ID exists
	ExistsByID(ctx context.Context, entityID id.ID) (bool, error)
}
