package warehouse

import (
	"context"
	"fmt"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/domain/location"
)

// Validator checks the cross-entity invariants of warehouse creation and
// replacement. Each check is callable standalone: Create runs all three,
// Replace skips the uniqueness check and excludes the warehouse being
// replaced from the location counts.
type Validator struct {
	store     Store
	locations location.Resolver
}

// NewValidator creates a Validator over the given store and location resolver.
func NewValidator(store Store, locations location.Resolver) *Validator {
	return &Validator{store: store, locations: locations}
}

// ValidateBusinessUnitCodeUnique fails when an active warehouse with the
// given code already exists.
func (v *Validator) ValidateBusinessUnitCodeUnique(ctx context.Context, businessUnitCode string) error {
	_, err := v.store.FindActiveByCode(ctx, businessUnitCode)
	if err == nil {
		return apperror.NewValidation(
			fmt.Sprintf("Business unit code '%s' already exists", businessUnitCode))
	}
	if apperror.IsNotFound(err) {
		return nil
	}
	return err
}

// ValidateLocationConstraints resolves the warehouse's location and checks
// that adding w would not exceed the site's warehouse count or summed
// capacity. excludeBusinessUnitCode removes the warehouse being replaced
// from the occupancy counts; pass "" for creation.
//
// Check order is fixed: location existence, then count, then capacity sum.
func (v *Validator) ValidateLocationConstraints(ctx context.Context, w *Warehouse, excludeBusinessUnitCode string) error {
	loc, err := v.locations.ResolveByIdentifier(ctx, w.Location)
	if err != nil {
		return err
	}

	atLocation, err := v.store.ListActiveByLocation(ctx, w.Location)
	if err != nil {
		return err
	}

	others := make([]*Warehouse, 0, len(atLocation))
	for _, existing := range atLocation {
		if excludeBusinessUnitCode != "" && existing.BusinessUnitCode == excludeBusinessUnitCode {
			continue
		}
		others = append(others, existing)
	}

	if len(others)+1 > loc.MaxNumberOfWarehouses {
		return apperror.NewValidation(
			fmt.Sprintf("Maximum number of warehouses reached at location '%s'", w.Location)).
			WithDetail("maxNumberOfWarehouses", loc.MaxNumberOfWarehouses)
	}

	totalCapacity := 0
	for _, existing := range others {
		totalCapacity += existing.Capacity
	}
	if totalCapacity+w.Capacity > loc.MaxCapacity {
		return apperror.NewValidation(
			fmt.Sprintf("Warehouse capacity exceeds maximum capacity for location '%s'", w.Location)).
			WithDetail("maxCapacity", loc.MaxCapacity)
	}

	return nil
}

// ValidateStockWithinCapacity fails when the warehouse's stock, if set,
// exceeds its capacity. A warehouse with unset stock always passes.
func (v *Validator) ValidateStockWithinCapacity(w *Warehouse) error {
	if w.Stock != nil && w.Capacity < *w.Stock {
		return apperror.NewValidation("Warehouse capacity cannot handle the specified stock").
			WithDetail("capacity", w.Capacity).
			WithDetail("stock", *w.Stock)
	}
	return nil
}
