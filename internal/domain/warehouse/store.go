package warehouse

import (
	"context"
)

// Store defines the persistence port for warehouses.
// All read methods operate on active warehouses only; archived rows are
// retained by the implementation but excluded from lookups.
type Store interface {
	// GetAllActive returns all active warehouses.
	GetAllActive(ctx context.Context) ([]*Warehouse, error)

	// ListActiveByLocation returns active warehouses at the given location.
	ListActiveByLocation(ctx context.Context, locationID string) ([]*Warehouse, error)

	// FindActiveByCode returns the active warehouse with the given
	// business-unit code, or apperror.CodeNotFound when absent or archived.
	FindActiveByCode(ctx context.Context, businessUnitCode string) (*Warehouse, error)

	// Create inserts a new warehouse row.
	Create(ctx context.Context, w *Warehouse) error

	// Update persists changes to an existing row (by surrogate id).
	Update(ctx context.Context, w *Warehouse) error
}
