// Package warehouse provides the warehouse catalog and its lifecycle
// use cases (create, archive, replace).
package warehouse

import (
	"context"
	"time"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
)

// Status is the lifecycle state of a warehouse.
// A warehouse is never physically deleted: archival is terminal.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Warehouse represents a storage unit bound to a location.
// Identity for callers is the business-unit code; ID is the surrogate key.
//
// At most one active warehouse may exist per business-unit code; archived
// rows with the same code may coexist historically.
type Warehouse struct {
	ID id.ID `db:"id" json:"id"`

	// BusinessUnitCode is the human-assigned unique identifier,
	// stable across the warehouse lifecycle
	BusinessUnitCode string `db:"business_unit_code" json:"businessUnitCode"`

	// Location is the identifier of the site this warehouse occupies
	Location string `db:"location" json:"location"`

	// Capacity is the maximum stock this warehouse can hold
	Capacity int `db:"capacity" json:"capacity"`

	// Stock is the current stock level, unset when unknown
	Stock *int `db:"stock" json:"stock,omitempty"`

	Status Status `db:"status" json:"status"`

	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	ArchivedAt *time.Time `db:"archived_at" json:"archivedAt,omitempty"`
}

// New creates an active Warehouse with required fields.
func New(businessUnitCode, locationID string, capacity int, stock *int) *Warehouse {
	return &Warehouse{
		ID:               id.New(),
		BusinessUnitCode: businessUnitCode,
		Location:         locationID,
		Capacity:         capacity,
		Stock:            stock,
		Status:           StatusActive,
	}
}

// Validate checks structural invariants of the entity.
// Cross-entity rules (uniqueness, location occupancy) live in Validator.
func (w *Warehouse) Validate(ctx context.Context) error {
	if w.BusinessUnitCode == "" {
		return apperror.NewValidation("business unit code is required").
			WithDetail("field", "businessUnitCode")
	}
	if w.Location == "" {
		return apperror.NewValidation("location is required").
			WithDetail("field", "location")
	}
	if w.Capacity < 0 {
		return apperror.NewValidation("capacity must not be negative").
			WithDetail("field", "capacity").
			WithDetail("value", w.Capacity)
	}
	if w.Stock != nil && *w.Stock < 0 {
		return apperror.NewValidation("stock must not be negative").
			WithDetail("field", "stock").
			WithDetail("value", *w.Stock)
	}
	return nil
}

// IsActive reports whether the warehouse has not been archived.
func (w *Warehouse) IsActive() bool {
	return w.Status == StatusActive
}

// Archive marks the warehouse archived at the given time.
// The transition is terminal; archiving an archived warehouse is a no-op.
func (w *Warehouse) Archive(at time.Time) {
	if w.Status == StatusArchived {
		return
	}
	w.Status = StatusArchived
	w.ArchivedAt = &at
}

// StockLevel returns the stock value or 0 when unset.
func (w *Warehouse) StockLevel() int {
	if w.Stock == nil {
		return 0
	}
	return *w.Stock
}
