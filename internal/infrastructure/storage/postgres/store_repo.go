package postgres

import (
	"fulfilment/internal/domain/store"
)

const storeTable = "stores"

var _ store.Repository = (*StoreRepo)(nil)

// StoreRepo implements store.Repository on top of BaseRepo.
type StoreRepo struct {
	*BaseRepo[*store.Store]
}

// NewStoreRepo creates a new store repository.
func NewStoreRepo(txm *TxManager) *StoreRepo {
	return &StoreRepo{
		BaseRepo: NewBaseRepo(
			txm,
			storeTable,
			ExtractDBColumns[store.Store](),
			func() *store.Store { return &store.Store{} },
		),
	}
}
