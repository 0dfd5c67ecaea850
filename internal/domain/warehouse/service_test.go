package warehouse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/domain/location"
)

// fakeStore is an in-memory Store for exercising the lifecycle rules.
type fakeStore struct {
	items []*Warehouse
}

func (f *fakeStore) GetAllActive(ctx context.Context) ([]*Warehouse, error) {
	var out []*Warehouse
	for _, w := range f.items {
		if w.IsActive() {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeStore) ListActiveByLocation(ctx context.Context, locationID string) ([]*Warehouse, error) {
	var out []*Warehouse
	for _, w := range f.items {
		if w.IsActive() && w.Location == locationID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeStore) FindActiveByCode(ctx context.Context, businessUnitCode string) (*Warehouse, error) {
	for _, w := range f.items {
		if w.IsActive() && w.BusinessUnitCode == businessUnitCode {
			return w, nil
		}
	}
	return nil, apperror.NewNotFound("warehouse", businessUnitCode)
}

func (f *fakeStore) Create(ctx context.Context, w *Warehouse) error {
	f.items = append(f.items, w)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, w *Warehouse) error {
	for i, existing := range f.items {
		if existing.ID == w.ID {
			f.items[i] = w
			return nil
		}
	}
	return apperror.NewNotFound("warehouse", w.ID.String())
}

// fakeTxManager runs the callback without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store *fakeStore) *Service {
	validator := NewValidator(store, location.NewDirectory())
	svc := NewService(store, validator, fakeTxManager{})
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestService_Create(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	w := New("MWH.001", "AMSTERDAM-001", 50, intPtr(10))
	require.NoError(t, svc.Create(ctx, w))

	assert.Equal(t, StatusActive, w.Status)
	assert.Equal(t, testNow, w.CreatedAt)
	assert.Nil(t, w.ArchivedAt)

	got, err := svc.GetByCode(ctx, "MWH.001")
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
}

func TestService_Create_DuplicateCode(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 30, nil)))

	err := svc.Create(ctx, New("MWH.001", "AMSTERDAM-002", 30, nil))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Business unit code 'MWH.001' already exists", appErr.Message)
}

func TestService_Create_CodeReusableAfterArchive(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 30, nil)))
	require.NoError(t, svc.Archive(ctx, "MWH.001"))

	// The code belongs to an archived warehouse now, so it is free again.
	require.NoError(t, svc.Create(ctx, New("MWH.001", "TILBURG-001", 20, nil)))
}

func TestService_Create_LocationFull(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	// ZWOLLE-001 admits a single warehouse.
	require.NoError(t, svc.Create(ctx, New("MWH.001", "ZWOLLE-001", 10, nil)))

	err := svc.Create(ctx, New("MWH.002", "ZWOLLE-001", 10, nil))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Maximum number of warehouses reached at location 'ZWOLLE-001'", appErr.Message)
}

func TestService_Create_LocationCapacityExceeded(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	// AMSTERDAM-001 caps summed capacity at 100.
	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 60, nil)))

	err := svc.Create(ctx, New("MWH.002", "AMSTERDAM-001", 41, nil))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Warehouse capacity exceeds maximum capacity for location 'AMSTERDAM-001'", appErr.Message)

	// Exactly at the cap still fits.
	require.NoError(t, svc.Create(ctx, New("MWH.003", "AMSTERDAM-001", 40, nil)))
}

func TestService_Create_StockExceedsCapacity(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	err := svc.Create(context.Background(), New("MWH.001", "AMSTERDAM-001", 10, intPtr(11)))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Warehouse capacity cannot handle the specified stock", appErr.Message)
}

func TestService_Create_UnknownLocation(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	err := svc.Create(context.Background(), New("MWH.001", "UTRECHT-001", 10, nil))
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_GetByCode_NotFound(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.GetByCode(context.Background(), "MWH.404")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Archive(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	w := New("MWH.001", "AMSTERDAM-001", 30, nil)
	require.NoError(t, svc.Create(ctx, w))

	require.NoError(t, svc.Archive(ctx, "MWH.001"))
	assert.Equal(t, StatusArchived, w.Status)
	require.NotNil(t, w.ArchivedAt)
	assert.Equal(t, testNow, *w.ArchivedAt)

	// The archived warehouse no longer resolves by code.
	_, err := svc.GetByCode(ctx, "MWH.001")
	assert.True(t, apperror.IsNotFound(err))

	// So a second archive surfaces as not-found.
	err = svc.Archive(ctx, "MWH.001")
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Archive_FreesLocationSlot(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, New("MWH.001", "ZWOLLE-001", 10, nil)))
	require.NoError(t, svc.Archive(ctx, "MWH.001"))

	// The slot at the single-warehouse location is free again.
	require.NoError(t, svc.Create(ctx, New("MWH.002", "ZWOLLE-001", 10, nil)))
}

func TestService_Replace(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	old := New("MWH.001", "AMSTERDAM-001", 50, intPtr(20))
	require.NoError(t, svc.Create(ctx, old))

	replacement := New("MWH.001", "AMSTERDAM-001", 80, intPtr(20))
	require.NoError(t, svc.Replace(ctx, replacement))

	assert.Equal(t, StatusArchived, old.Status)
	assert.Equal(t, StatusActive, replacement.Status)

	got, err := svc.GetByCode(ctx, "MWH.001")
	require.NoError(t, err)
	assert.Equal(t, replacement.ID, got.ID)
	assert.Equal(t, 80, got.Capacity)
}

func TestService_Replace_NotFound(t *testing.T) {
	svc := newTestService(&fakeStore{})

	err := svc.Replace(context.Background(), New("MWH.404", "AMSTERDAM-001", 50, nil))
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Replace_CapacityCannotAccommodateStock(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 50, intPtr(30))))

	err := svc.Replace(ctx, New("MWH.001", "AMSTERDAM-001", 20, intPtr(30)))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "New warehouse capacity cannot accommodate the stock from the replaced warehouse", appErr.Message)
}

func TestService_Replace_StockMismatch(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 50, intPtr(30))))

	err := svc.Replace(ctx, New("MWH.001", "AMSTERDAM-001", 50, intPtr(25)))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Stock of new warehouse must match the stock of the replaced warehouse", appErr.Message)
}

func TestService_Replace_UnsetStockMatchesZero(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 50, nil)))

	// Unset stock counts as zero on both sides of the comparison.
	require.NoError(t, svc.Replace(ctx, New("MWH.001", "AMSTERDAM-001", 60, intPtr(0))))
}

func TestService_Replace_ExcludesReplacedFromLocationCounts(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	// ZWOLLE-001: one warehouse max, 40 capacity. A same-location
	// replacement must not trip either limit against itself.
	require.NoError(t, svc.Create(ctx, New("MWH.001", "ZWOLLE-001", 30, intPtr(10))))
	require.NoError(t, svc.Replace(ctx, New("MWH.001", "ZWOLLE-001", 40, intPtr(10))))

	got, err := svc.GetByCode(ctx, "MWH.001")
	require.NoError(t, err)
	assert.Equal(t, 40, got.Capacity)
}

func TestService_Replace_StillBoundByOtherWarehouses(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	// AMSTERDAM-001 caps summed capacity at 100.
	require.NoError(t, svc.Create(ctx, New("MWH.001", "AMSTERDAM-001", 50, nil)))
	require.NoError(t, svc.Create(ctx, New("MWH.002", "AMSTERDAM-001", 40, nil)))

	err := svc.Replace(ctx, New("MWH.001", "AMSTERDAM-001", 70, intPtr(0)))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Warehouse capacity exceeds maximum capacity for location 'AMSTERDAM-001'", appErr.Message)
}
