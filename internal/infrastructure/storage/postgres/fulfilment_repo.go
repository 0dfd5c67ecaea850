package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fulfilment/internal/core/id"
	"fulfilment/internal/domain/fulfilment"
)

const fulfilmentTable = "fulfilments"

var _ fulfilment.Repository = (*FulfilmentRepo)(nil)

// FulfilmentRepo implements fulfilment.Repository.
type FulfilmentRepo struct {
	*BaseRepo[*fulfilment.Fulfilment]
}

// NewFulfilmentRepo creates a new fulfilment repository.
func NewFulfilmentRepo(txm *TxManager) *FulfilmentRepo {
	return &FulfilmentRepo{
		BaseRepo: NewBaseRepo(
			txm,
			fulfilmentTable,
			ExtractDBColumns[fulfilment.Fulfilment](),
			func() *fulfilment.Fulfilment { return &fulfilment.Fulfilment{} },
		),
	}
}

// ListAll returns every fulfilment record.
func (r *FulfilmentRepo) ListAll(ctx context.Context) ([]*fulfilment.Fulfilment, error) {
	return r.List(ctx)
}

// ListByStoreID returns the records for one store.
func (r *FulfilmentRepo) ListByStoreID(ctx context.Context, storeID id.ID) ([]*fulfilment.Fulfilment, error) {
	return r.selectWhere(ctx, squirrel.Eq{"store_id": storeID})
}

// ListByProductID returns the records for one product.
func (r *FulfilmentRepo) ListByProductID(ctx context.Context, productID id.ID) ([]*fulfilment.Fulfilment, error) {
	return r.selectWhere(ctx, squirrel.Eq{"product_id": productID})
}

// ListByWarehouseCode returns the records for one warehouse.
func (r *FulfilmentRepo) ListByWarehouseCode(ctx context.Context, businessUnitCode string) ([]*fulfilment.Fulfilment, error) {
	return r.selectWhere(ctx, squirrel.Eq{"warehouse_business_unit_code": businessUnitCode})
}

func (r *FulfilmentRepo) selectWhere(ctx context.Context, pred squirrel.Eq) ([]*fulfilment.Fulfilment, error) {
	q := r.baseSelect().
		Where(pred).
		OrderBy("id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*fulfilment.Fulfilment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list fulfilments: %w", err)
	}

	return items, nil
}

// ExistsTriple reports whether the exact association already exists.
func (r *FulfilmentRepo) ExistsTriple(ctx context.Context, storeID, productID id.ID, businessUnitCode string) (bool, error) {
	q := r.Builder().
		Select("1").
		From(fulfilmentTable).
		Where(squirrel.Eq{
			"store_id":                     storeID,
			"product_id":                   productID,
			"warehouse_business_unit_code": businessUnitCode,
		}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	if err := pgxscan.Get(ctx, r.Querier(ctx), &one, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("exists fulfilment: %w", err)
	}

	return true, nil
}

// CountDistinctWarehousesForProductInStore counts the distinct warehouses
// already fulfilling (storeID, productID).
func (r *FulfilmentRepo) CountDistinctWarehousesForProductInStore(ctx context.Context, storeID, productID id.ID) (int64, error) {
	return r.countDistinct(ctx, "warehouse_business_unit_code", squirrel.Eq{
		"store_id":   storeID,
		"product_id": productID,
	})
}

// CountDistinctWarehousesForStore counts the distinct warehouses serving
// the store across all products.
func (r *FulfilmentRepo) CountDistinctWarehousesForStore(ctx context.Context, storeID id.ID) (int64, error) {
	return r.countDistinct(ctx, "warehouse_business_unit_code", squirrel.Eq{"store_id": storeID})
}

// CountDistinctProductsForWarehouse counts the distinct products stored in
// the warehouse across all stores.
func (r *FulfilmentRepo) CountDistinctProductsForWarehouse(ctx context.Context, businessUnitCode string) (int64, error) {
	return r.countDistinct(ctx, "product_id", squirrel.Eq{"warehouse_business_unit_code": businessUnitCode})
}

func (r *FulfilmentRepo) countDistinct(ctx context.Context, column string, pred squirrel.Eq) (int64, error) {
	q := r.Builder().
		Select(fmt.Sprintf("COUNT(DISTINCT %s)", column)).
		From(fulfilmentTable).
		Where(pred)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var count int64
	if err := pgxscan.Get(ctx, r.Querier(ctx), &count, sql, args...); err != nil {
		return 0, fmt.Errorf("count fulfilments: %w", err)
	}

	return count, nil
}

// Insert persists a new record.
func (r *FulfilmentRepo) Insert(ctx context.Context, f *fulfilment.Fulfilment) error {
	return r.Create(ctx, f)
}

// DeleteByID removes a record.
func (r *FulfilmentRepo) DeleteByID(ctx context.Context, fulfilmentID id.ID) error {
	return r.Delete(ctx, fulfilmentID)
}
