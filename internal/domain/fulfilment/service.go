package fulfilment

import (
	"context"
	"fmt"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
	"fulfilment/internal/core/tx"
	"fulfilment/internal/domain/warehouse"
	"fulfilment/pkg/logger"
)

// Cardinality caps on fulfilment associations.
const (
	// MaxWarehousesPerProductPerStore bounds the warehouses fulfilling
	// one product for one store.
	MaxWarehousesPerProductPerStore = 2

	// MaxWarehousesPerStore bounds the warehouses serving one store
	// across all products.
	MaxWarehousesPerStore = 3

	// MaxProductsPerWarehouse bounds the product types one warehouse
	// may store.
	MaxProductsPerWarehouse = 5
)

// Service validates and manages fulfilment links.
//
// Missing collaborator entities (store, product, warehouse) surface as
// not-found uniformly; rule violations surface as validation errors.
type Service struct {
	repo       Repository
	stores     StoreDirectory
	products   ProductDirectory
	warehouses warehouse.Store
	txManager  tx.Manager
}

// NewService creates a fulfilment Service.
func NewService(
	repo Repository,
	stores StoreDirectory,
	products ProductDirectory,
	warehouses warehouse.Store,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:       repo,
		stores:     stores,
		products:   products,
		warehouses: warehouses,
		txManager:  txManager,
	}
}

// GetAll returns all fulfilment records, no validation.
func (s *Service) GetAll(ctx context.Context) ([]*Fulfilment, error) {
	return s.repo.ListAll(ctx)
}

// GetByStoreID returns the fulfilment records for one store.
// An unknown store surfaces as not-found.
func (s *Service) GetByStoreID(ctx context.Context, storeID id.ID) ([]*Fulfilment, error) {
	exists, err := s.stores.ExistsByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NewNotFound("store", storeID.String())
	}
	return s.repo.ListByStoreID(ctx, storeID)
}

// Create validates and persists a new fulfilment link.
// Checks run in order, aborting at the first failure: entity existence,
// duplicate triple, per-product-per-store cap, per-store cap,
// per-warehouse cap. The unique index on the triple is the storage-level
// backstop against concurrent duplicate inserts.
func (s *Service) Create(ctx context.Context, f *Fulfilment) error {
	if err := f.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.validateEntitiesExist(ctx, f); err != nil {
			return err
		}
		if err := s.validateNoDuplicate(ctx, f); err != nil {
			return err
		}
		if err := s.validateMaxWarehousesPerProductPerStore(ctx, f); err != nil {
			return err
		}
		if err := s.validateMaxWarehousesPerStore(ctx, f); err != nil {
			return err
		}
		if err := s.validateMaxProductsPerWarehouse(ctx, f); err != nil {
			return err
		}

		if err := s.repo.Insert(ctx, f); err != nil {
			return fmt.Errorf("insert fulfilment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "fulfilment created",
		"store_id", f.StoreID.String(),
		"product_id", f.ProductID.String(),
		"warehouse", f.WarehouseBusinessUnitCode,
	)
	return nil
}

// Delete removes a fulfilment record by id. No cascading effects.
func (s *Service) Delete(ctx context.Context, fulfilmentID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.DeleteByID(ctx, fulfilmentID)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "fulfilment deleted", "fulfilment_id", fulfilmentID.String())
	return nil
}

func (s *Service) validateEntitiesExist(ctx context.Context, f *Fulfilment) error {
	storeExists, err := s.stores.ExistsByID(ctx, f.StoreID)
	if err != nil {
		return err
	}
	if !storeExists {
		return apperror.NewNotFound("store", f.StoreID.String())
	}

	productExists, err := s.products.ExistsByID(ctx, f.ProductID)
	if err != nil {
		return err
	}
	if !productExists {
		return apperror.NewNotFound("product", f.ProductID.String())
	}

	if _, err := s.warehouses.FindActiveByCode(ctx, f.WarehouseBusinessUnitCode); err != nil {
		return err
	}
	return nil
}

func (s *Service) validateNoDuplicate(ctx context.Context, f *Fulfilment) error {
	exists, err := s.repo.ExistsTriple(ctx, f.StoreID, f.ProductID, f.WarehouseBusinessUnitCode)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewValidation("This fulfilment association already exists")
	}
	return nil
}

func (s *Service) validateMaxWarehousesPerProductPerStore(ctx context.Context, f *Fulfilment) error {
	count, err := s.repo.CountDistinctWarehousesForProductInStore(ctx, f.StoreID, f.ProductID)
	if err != nil {
		return err
	}
	if count >= MaxWarehousesPerProductPerStore {
		return apperror.NewValidation(fmt.Sprintf(
			"Product can be fulfilled by a maximum of %d warehouses per store",
			MaxWarehousesPerProductPerStore)).
			WithDetail("limit", MaxWarehousesPerProductPerStore)
	}
	return nil
}

// validateMaxWarehousesPerStore only applies when the warehouse is not
// already among those serving the store: adding a link to a warehouse the
// store already uses never consumes a new slot.
func (s *Service) validateMaxWarehousesPerStore(ctx context.Context, f *Fulfilment) error {
	existing, err := s.repo.ListByStoreID(ctx, f.StoreID)
	if err != nil {
		return err
	}
	for _, link := range existing {
		if link.WarehouseBusinessUnitCode == f.WarehouseBusinessUnitCode {
			return nil
		}
	}

	count, err := s.repo.CountDistinctWarehousesForStore(ctx, f.StoreID)
	if err != nil {
		return err
	}
	if count >= MaxWarehousesPerStore {
		return apperror.NewValidation(fmt.Sprintf(
			"Store can be fulfilled by a maximum of %d warehouses",
			MaxWarehousesPerStore)).
			WithDetail("limit", MaxWarehousesPerStore)
	}
	return nil
}

// validateMaxProductsPerWarehouse only applies when the product is not
// already stored in the warehouse.
func (s *Service) validateMaxProductsPerWarehouse(ctx context.Context, f *Fulfilment) error {
	existing, err := s.repo.ListByWarehouseCode(ctx, f.WarehouseBusinessUnitCode)
	if err != nil {
		return err
	}
	for _, link := range existing {
		if link.ProductID == f.ProductID {
			return nil
		}
	}

	count, err := s.repo.CountDistinctProductsForWarehouse(ctx, f.WarehouseBusinessUnitCode)
	if err != nil {
		return err
	}
	if count >= MaxProductsPerWarehouse {
		return apperror.NewValidation(fmt.Sprintf(
			"Warehouse can store a maximum of %d types of products",
			MaxProductsPerWarehouse)).
			WithDetail("limit", MaxProductsPerWarehouse)
	}
	return nil
}
