package fulfilment

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
	"fulfilment/internal/domain/warehouse"
)

// fakeRepo is an in-memory Repository backing the cap rules.
type fakeRepo struct {
	items []*Fulfilment
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*Fulfilment, error) {
	return f.items, nil
}

func (f *fakeRepo) ListByStoreID(ctx context.Context, storeID id.ID) ([]*Fulfilment, error) {
	var out []*Fulfilment
	for _, item := range f.items {
		if item.StoreID == storeID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByProductID(ctx context.Context, productID id.ID) ([]*Fulfilment, error) {
	var out []*Fulfilment
	for _, item := range f.items {
		if item.ProductID == productID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByWarehouseCode(ctx context.Context, businessUnitCode string) ([]*Fulfilment, error) {
	var out []*Fulfilment
	for _, item := range f.items {
		if item.WarehouseBusinessUnitCode == businessUnitCode {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, fulfilmentID id.ID) (*Fulfilment, error) {
	for _, item := range f.items {
		if item.ID == fulfilmentID {
			return item, nil
		}
	}
	return nil, apperror.NewNotFound("fulfilment", fulfilmentID.String())
}

func (f *fakeRepo) ExistsTriple(ctx context.Context, storeID, productID id.ID, businessUnitCode string) (bool, error) {
	for _, item := range f.items {
		if item.StoreID == storeID && item.ProductID == productID &&
			item.WarehouseBusinessUnitCode == businessUnitCode {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CountDistinctWarehousesForProductInStore(ctx context.Context, storeID, productID id.ID) (int64, error) {
	seen := map[string]bool{}
	for _, item := range f.items {
		if item.StoreID == storeID && item.ProductID == productID {
			seen[item.WarehouseBusinessUnitCode] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeRepo) CountDistinctWarehousesForStore(ctx context.Context, storeID id.ID) (int64, error) {
	seen := map[string]bool{}
	for _, item := range f.items {
		if item.StoreID == storeID {
			seen[item.WarehouseBusinessUnitCode] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeRepo) CountDistinctProductsForWarehouse(ctx context.Context, businessUnitCode string) (int64, error) {
	seen := map[id.ID]bool{}
	for _, item := range f.items {
		if item.WarehouseBusinessUnitCode == businessUnitCode {
			seen[item.ProductID] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeRepo) Insert(ctx context.Context, record *Fulfilment) error {
	f.items = append(f.items, record)
	return nil
}

func (f *fakeRepo) DeleteByID(ctx context.Context, fulfilmentID id.ID) error {
	for i, item := range f.items {
		if item.ID == fulfilmentID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("fulfilment", fulfilmentID.String())
}

// fakeDirectory answers existence checks from a fixed id set.
type fakeDirectory map[id.ID]bool

func (f fakeDirectory) ExistsByID(ctx context.Context, entityID id.ID) (bool, error) {
	return f[entityID], nil
}

// fakeWarehouses serves FindActiveByCode from a fixed code set.
type fakeWarehouses map[string]bool

func (f fakeWarehouses) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	return nil, nil
}

func (f fakeWarehouses) ListActiveByLocation(ctx context.Context, locationID string) ([]*warehouse.Warehouse, error) {
	return nil, nil
}

func (f fakeWarehouses) FindActiveByCode(ctx context.Context, businessUnitCode string) (*warehouse.Warehouse, error) {
	if !f[businessUnitCode] {
		return nil, apperror.NewNotFound("warehouse", businessUnitCode)
	}
	return &warehouse.Warehouse{BusinessUnitCode: businessUnitCode, Status: warehouse.StatusActive}, nil
}

func (f fakeWarehouses) Create(ctx context.Context, w *warehouse.Warehouse) error { return nil }

func (f fakeWarehouses) Update(ctx context.Context, w *warehouse.Warehouse) error { return nil }

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	repo    *fakeRepo
	svc     *Service
	storeID id.ID
	prodID  id.ID
}

func newFixture() *fixture {
	storeID := id.New()
	prodID := id.New()

	repo := &fakeRepo{}
	svc := NewService(
		repo,
		fakeDirectory{storeID: true},
		fakeDirectory{prodID: true},
		fakeWarehouses{"MWH.001": true, "MWH.012": true, "MWH.023": true, "MWH.054": true},
		fakeTxManager{},
	)

	return &fixture{repo: repo, svc: svc, storeID: storeID, prodID: prodID}
}

func TestFulfilmentService_Create(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	f := New(fx.storeID, fx.prodID, "MWH.001")
	require.NoError(t, fx.svc.Create(ctx, f))

	all, err := fx.svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, f.ID, all[0].ID)
}

func TestFulfilmentService_Create_MissingEntities(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	tests := []struct {
		name string
		f    *Fulfilment
	}{
		{"unknown store", New(id.New(), fx.prodID, "MWH.001")},
		{"unknown product", New(fx.storeID, id.New(), "MWH.001")},
		{"unknown warehouse", New(fx.storeID, fx.prodID, "MWH.404")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.svc.Create(ctx, tt.f)
			require.Error(t, err)
			assert.True(t, apperror.IsNotFound(err))
		})
	}
}

func TestFulfilmentService_Create_Duplicate(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.001")))

	err := fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.001"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "This fulfilment association already exists", appErr.Message)
}

func TestFulfilmentService_Create_MaxWarehousesPerProductPerStore(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.001")))
	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.012")))

	err := fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.023"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf(
		"Product can be fulfilled by a maximum of %d warehouses per store",
		MaxWarehousesPerProductPerStore), appErr.Message)
}

func TestFulfilmentService_Create_MaxWarehousesPerStore(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	// Three warehouses across distinct products exhaust the store's slots.
	p2, p3 := id.New(), id.New()
	fx.svc.products = fakeDirectory{fx.prodID: true, p2: true, p3: true}

	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.001")))
	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, p2, "MWH.012")))
	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, p3, "MWH.023")))

	err := fx.svc.Create(ctx, New(fx.storeID, p3, "MWH.054"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf(
		"Store can be fulfilled by a maximum of %d warehouses",
		MaxWarehousesPerStore), appErr.Message)

	// A warehouse already serving the store never consumes a new slot.
	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, p2, "MWH.001")))
}

func TestFulfilmentService_Create_MaxProductsPerWarehouse(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	// Five products in one warehouse, each from a different store so the
	// store-level caps stay out of the way.
	products := make(map[id.ID]bool)
	stores := make(map[id.ID]bool)
	productIDs := make([]id.ID, 6)
	storeIDs := make([]id.ID, 6)
	for i := range productIDs {
		productIDs[i] = id.New()
		storeIDs[i] = id.New()
		products[productIDs[i]] = true
		stores[storeIDs[i]] = true
	}
	fx.svc.products = fakeDirectory(products)
	fx.svc.stores = fakeDirectory(stores)

	for i := 0; i < 5; i++ {
		require.NoError(t, fx.svc.Create(ctx, New(storeIDs[i], productIDs[i], "MWH.001")))
	}

	err := fx.svc.Create(ctx, New(storeIDs[5], productIDs[5], "MWH.001"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf(
		"Warehouse can store a maximum of %d types of products",
		MaxProductsPerWarehouse), appErr.Message)

	// A product the warehouse already stores does not count again.
	require.NoError(t, fx.svc.Create(ctx, New(storeIDs[5], productIDs[0], "MWH.001")))
}

func TestFulfilmentService_GetByStoreID(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	require.NoError(t, fx.svc.Create(ctx, New(fx.storeID, fx.prodID, "MWH.001")))

	items, err := fx.svc.GetByStoreID(ctx, fx.storeID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = fx.svc.GetByStoreID(ctx, id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFulfilmentService_Delete(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	f := New(fx.storeID, fx.prodID, "MWH.001")
	require.NoError(t, fx.svc.Create(ctx, f))

	require.NoError(t, fx.svc.Delete(ctx, f.ID))

	all, err := fx.svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = fx.svc.Delete(ctx, f.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
