package store

import (
	"fulfilment/internal/core/tx"
	"fulfilment/internal/domain"
)

// Service provides business logic for the Store catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Store]
	repo Repository
}

// NewService creates a new Store service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Store]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "store",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
