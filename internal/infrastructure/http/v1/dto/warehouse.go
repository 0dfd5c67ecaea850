package dto

import (
	"time"

	"fulfilment/internal/domain/warehouse"
)

// --- Request DTOs ---

// CreateWarehouseRequest is the request body for creating a warehouse.
type CreateWarehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode" binding:"required"`
	Location         string `json:"location" binding:"required"`
	Capacity         int    `json:"capacity"`
	Stock            *int   `json:"stock"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateWarehouseRequest) ToEntity() *warehouse.Warehouse {
	return warehouse.New(r.BusinessUnitCode, r.Location, r.Capacity, r.Stock)
}

// ReplaceWarehouseRequest is the request body for replacing a warehouse.
// The business unit code comes from the URL path; the replacement inherits it.
type ReplaceWarehouseRequest struct {
	Location string `json:"location" binding:"required"`
	Capacity int    `json:"capacity"`
	Stock    *int   `json:"stock"`
}

// ToEntity converts DTO to domain entity carrying the given code.
func (r *ReplaceWarehouseRequest) ToEntity(businessUnitCode string) *warehouse.Warehouse {
	return warehouse.New(businessUnitCode, r.Location, r.Capacity, r.Stock)
}

// --- Response DTOs ---

// WarehouseResponse is the response body for a warehouse.
type WarehouseResponse struct {
	ID               string     `json:"id"`
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            *int       `json:"stock,omitempty"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
}

// FromWarehouse creates response DTO from domain entity.
func FromWarehouse(w *warehouse.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:               w.ID.String(),
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		Status:           string(w.Status),
		CreatedAt:        w.CreatedAt,
		ArchivedAt:       w.ArchivedAt,
	}
}

// FromWarehouses maps a slice of warehouses to response DTOs.
func FromWarehouses(items []*warehouse.Warehouse) []*WarehouseResponse {
	out := make([]*WarehouseResponse, len(items))
	for i, w := range items {
		out[i] = FromWarehouse(w)
	}
	return out
}
