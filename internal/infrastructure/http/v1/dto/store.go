package dto

import (
	"fulfilment/internal/domain/store"
)

// CreateStoreRequest is the request body for creating a store.
type CreateStoreRequest struct {
	Name                    string `json:"name" binding:"required"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateStoreRequest) ToEntity() *store.Store {
	return store.New(r.Name, r.QuantityProductsInStock)
}

// UpdateStoreRequest is the request body for updating a store.
type UpdateStoreRequest struct {
	Name                    string `json:"name" binding:"required"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateStoreRequest) ApplyTo(s *store.Store) {
	s.Name = r.Name
	s.QuantityProductsInStock = r.QuantityProductsInStock
}

// StoreResponse is the response body for a store.
type StoreResponse struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// FromStore creates response DTO from domain entity.
func FromStore(s *store.Store) *StoreResponse {
	return &StoreResponse{
		ID:                      s.ID.String(),
		Name:                    s.Name,
		QuantityProductsInStock: s.QuantityProductsInStock,
	}
}
