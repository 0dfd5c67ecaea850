package fulfilment

import (
	"context"

	"fulfilment/internal/core/id"
)

// Repository defines the persistence port for fulfilment links.
type Repository interface {
	// ListAll returns every fulfilment record.
	ListAll(ctx context.Context) ([]*Fulfilment, error)

	// ListByStoreID returns the records for one store.
	ListByStoreID(ctx context.Context, storeID id.ID) ([]*Fulfilment, error)

	// ListByProductID returns the records for one product.
	ListByProductID(ctx context.Context, productID id.ID) ([]*Fulfilment, error)

	// ListByWarehouseCode returns the records for one warehouse.
	ListByWarehouseCode(ctx context.Context, businessUnitCode string) ([]*Fulfilment, error)

	// GetByID returns a record or apperror.CodeNotFound.
	GetByID(ctx context.Context, fulfilmentID id.ID) (*Fulfilment, error)

	// ExistsTriple reports whether the exact association already exists.
	ExistsTriple(ctx context.Context, storeID, productID id.ID, businessUnitCode string) (bool, error)

	// CountDistinctWarehousesForProductInStore counts the distinct
	// warehouses already fulfilling (storeID, productID).
	CountDistinctWarehousesForProductInStore(ctx context.Context, storeID, productID id.ID) (int64, error)

	// CountDistinctWarehousesForStore counts the distinct warehouses
	// serving the store across all products.
	CountDistinctWarehousesForStore(ctx context.Context, storeID id.ID) (int64, error)

	// CountDistinctProductsForWarehouse counts the distinct products
	// stored in the warehouse across all stores.
	CountDistinctProductsForWarehouse(ctx context.Context, businessUnitCode string) (int64, error)

	// Insert persists a new record.
	Insert(ctx context.Context, f *Fulfilment) error

	// DeleteByID removes a record; apperror.CodeNotFound when absent.
	DeleteByID(ctx context.Context, fulfilmentID id.ID) error
}

// StoreDirectory is the collaborator contract for store existence checks.
type StoreDirectory interface {
	ExistsByID(ctx context.Context, storeID id.ID) (bool, error)
}

// ProductDirectory is the collaborator contract for product existence checks.
type ProductDirectory interface {
	ExistsByID(ctx context.Context, productID id.ID) (bool, error)
}
