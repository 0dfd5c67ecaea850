// Package fulfilment provides store-product-warehouse fulfilment links:
// an association permitting a warehouse to supply a product to a store.
package fulfilment

import (
	"context"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
)

// Fulfilment associates a warehouse with a (store, product) pair.
// The triple (StoreID, ProductID, WarehouseBusinessUnitCode) is unique;
// records are created and deleted, never updated.
type Fulfilment struct {
	ID id.ID `db:"id" json:"id"`

	StoreID   id.ID `db:"store_id" json:"storeId"`
	ProductID id.ID `db:"product_id" json:"productId"`

	WarehouseBusinessUnitCode string `db:"warehouse_business_unit_code" json:"warehouseBusinessUnitCode"`
}

// New creates a Fulfilment with a generated surrogate id.
func New(storeID, productID id.ID, warehouseBusinessUnitCode string) *Fulfilment {
	return &Fulfilment{
		ID:                        id.New(),
		StoreID:                   storeID,
		ProductID:                 productID,
		WarehouseBusinessUnitCode: warehouseBusinessUnitCode,
	}
}

// Validate checks structural invariants of the link.
func (f *Fulfilment) Validate(ctx context.Context) error {
	if id.IsNil(f.StoreID) {
		return apperror.NewValidation("store id is required").
			WithDetail("field", "storeId")
	}
	if id.IsNil(f.ProductID) {
		return apperror.NewValidation("product id is required").
			WithDetail("field", "productId")
	}
	if f.WarehouseBusinessUnitCode == "" {
		return apperror.NewValidation("warehouse business unit code is required").
			WithDetail("field", "warehouseBusinessUnitCode")
	}
	return nil
}
