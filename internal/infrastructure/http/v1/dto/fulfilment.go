package dto

import (
	"fulfilment/internal/core/id"
	"fulfilment/internal/domain/fulfilment"
)

// CreateFulfilmentRequest is the request body for creating a fulfilment link.
type CreateFulfilmentRequest struct {
	StoreID                   string `json:"storeId" binding:"required"`
	ProductID                 string `json:"productId" binding:"required"`
	WarehouseBusinessUnitCode string `json:"warehouseBusinessUnitCode" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateFulfilmentRequest) ToEntity() (*fulfilment.Fulfilment, error) {
	storeID, err := id.Parse(r.StoreID)
	if err != nil {
		return nil, err
	}
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return nil, err
	}
	return fulfilment.New(storeID, productID, r.WarehouseBusinessUnitCode), nil
}

// FulfilmentResponse is the response body for a fulfilment link.
type FulfilmentResponse struct {
	ID                        string `json:"id"`
	StoreID                   string `json:"storeId"`
	ProductID                 string `json:"productId"`
	WarehouseBusinessUnitCode string `json:"warehouseBusinessUnitCode"`
}

// FromFulfilment creates response DTO from domain entity.
func FromFulfilment(f *fulfilment.Fulfilment) *FulfilmentResponse {
	return &FulfilmentResponse{
		ID:                        f.ID.String(),
		StoreID:                   f.StoreID.String(),
		ProductID:                 f.ProductID.String(),
		WarehouseBusinessUnitCode: f.WarehouseBusinessUnitCode,
	}
}

// FromFulfilments maps a slice of links to response DTOs.
func FromFulfilments(items []*fulfilment.Fulfilment) []*FulfilmentResponse {
	out := make([]*FulfilmentResponse, len(items))
	for i, f := range items {
		out[i] = FromFulfilment(f)
	}
	return out
}
