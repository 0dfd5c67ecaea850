package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/domain/warehouse"
)

const warehouseTable = "warehouses"

// Compile-time check that WarehouseRepo implements warehouse.Store.
var _ warehouse.Store = (*WarehouseRepo)(nil)

// WarehouseRepo implements warehouse.Store.
// Archived rows are retained; all lookups filter on active status.
type WarehouseRepo struct {
	*BaseRepo[*warehouse.Warehouse]
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(txm *TxManager) *WarehouseRepo {
	return &WarehouseRepo{
		BaseRepo: NewBaseRepo(
			txm,
			warehouseTable,
			ExtractDBColumns[warehouse.Warehouse](),
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		),
	}
}

// activeSelect builds a SELECT over active warehouses only.
func (r *WarehouseRepo) activeSelect() squirrel.SelectBuilder {
	return r.baseSelect().
		Where(squirrel.Eq{"status": warehouse.StatusActive})
}

// GetAllActive returns all active warehouses.
func (r *WarehouseRepo) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	q := r.activeSelect().OrderBy("business_unit_code")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*warehouse.Warehouse
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list active warehouses: %w", err)
	}

	return items, nil
}

// ListActiveByLocation returns active warehouses at the given location.
func (r *WarehouseRepo) ListActiveByLocation(ctx context.Context, locationID string) ([]*warehouse.Warehouse, error) {
	q := r.activeSelect().
		Where(squirrel.Eq{"location": locationID}).
		OrderBy("business_unit_code")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*warehouse.Warehouse
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list warehouses at location: %w", err)
	}

	return items, nil
}

// FindActiveByCode returns the active warehouse with the given code.
func (r *WarehouseRepo) FindActiveByCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error) {
	entity := &warehouse.Warehouse{}

	q := r.activeSelect().
		Where(squirrel.Eq{"business_unit_code": businessUnitCode}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("warehouse", businessUnitCode)
		}
		return nil, fmt.Errorf("find warehouse by code: %w", err)
	}

	return entity, nil
}
