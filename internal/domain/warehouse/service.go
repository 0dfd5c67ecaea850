package warehouse

import (
	"context"
	"fmt"
	"time"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/tx"
	"fulfilment/pkg/logger"
)

// Service implements the warehouse lifecycle use cases.
//
// Each mutating operation runs inside a single transaction so that the
// validation reads and the write share one transactional unit. Concurrent
// operations on the same location are serialized by the store's isolation
// level plus the partial unique index on active business-unit codes.
type Service struct {
	store     Store
	validator *Validator
	txManager tx.Manager
	now       func() time.Time
}

// NewService creates a warehouse Service.
func NewService(store Store, validator *Validator, txManager tx.Manager) *Service {
	return &Service{
		store:     store,
		validator: validator,
		txManager: txManager,
		now:       time.Now,
	}
}

// List returns all active warehouses.
func (s *Service) List(ctx context.Context) ([]*Warehouse, error) {
	return s.store.GetAllActive(ctx)
}

// GetByCode returns the active warehouse with the given business-unit code.
func (s *Service) GetByCode(ctx context.Context, businessUnitCode string) (*Warehouse, error) {
	return s.store.FindActiveByCode(ctx, businessUnitCode)
}

// Create validates and persists a new active warehouse.
// Checks run in order: code uniqueness, location constraints, stock within
// capacity. The first violation aborts with no side effect.
func (s *Service) Create(ctx context.Context, w *Warehouse) error {
	if err := w.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.validator.ValidateBusinessUnitCodeUnique(ctx, w.BusinessUnitCode); err != nil {
			return err
		}
		if err := s.validator.ValidateLocationConstraints(ctx, w, ""); err != nil {
			return err
		}
		if err := s.validator.ValidateStockWithinCapacity(w); err != nil {
			return err
		}

		w.Status = StatusActive
		w.CreatedAt = s.now()
		w.ArchivedAt = nil

		if err := s.store.Create(ctx, w); err != nil {
			return fmt.Errorf("create warehouse: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "warehouse created",
		"business_unit_code", w.BusinessUnitCode,
		"location", w.Location,
	)
	return nil
}

// Archive marks the active warehouse with the given code as archived.
// Archiving an already-archived code surfaces as not-found: the lookup
// excludes archived rows.
func (s *Service) Archive(ctx context.Context, businessUnitCode string) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.store.FindActiveByCode(ctx, businessUnitCode)
		if err != nil {
			return err
		}

		existing.Archive(s.now())
		if err := s.store.Update(ctx, existing); err != nil {
			return fmt.Errorf("archive warehouse: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "warehouse archived", "business_unit_code", businessUnitCode)
	return nil
}

// Replace atomically swaps the active warehouse for newWarehouse, which
// carries the same business-unit code. The existing warehouse is archived
// and newWarehouse becomes the active record.
//
// Stock is carried over unchanged by design: a replacement with a
// different stock level is rejected.
func (s *Service) Replace(ctx context.Context, newWarehouse *Warehouse) error {
	if err := newWarehouse.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.store.FindActiveByCode(ctx, newWarehouse.BusinessUnitCode)
		if err != nil {
			return err
		}

		if newWarehouse.Capacity < existing.StockLevel() {
			return apperror.NewValidation(
				"New warehouse capacity cannot accommodate the stock from the replaced warehouse").
				WithDetail("capacity", newWarehouse.Capacity).
				WithDetail("stock", existing.StockLevel())
		}

		if newWarehouse.StockLevel() != existing.StockLevel() {
			return apperror.NewValidation(
				"Stock of new warehouse must match the stock of the replaced warehouse").
				WithDetail("expectedStock", existing.StockLevel())
		}

		// The replaced warehouse is excluded from its own location's
		// occupancy so it is not counted twice.
		if err := s.validator.ValidateLocationConstraints(ctx, newWarehouse, existing.BusinessUnitCode); err != nil {
			return err
		}

		existing.Archive(s.now())
		if err := s.store.Update(ctx, existing); err != nil {
			return fmt.Errorf("archive replaced warehouse: %w", err)
		}

		newWarehouse.Status = StatusActive
		newWarehouse.CreatedAt = s.now()
		newWarehouse.ArchivedAt = nil
		if err := s.store.Create(ctx, newWarehouse); err != nil {
			return fmt.Errorf("create replacement warehouse: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "warehouse replaced",
		"business_unit_code", newWarehouse.BusinessUnitCode,
		"location", newWarehouse.Location,
	)
	return nil
}
