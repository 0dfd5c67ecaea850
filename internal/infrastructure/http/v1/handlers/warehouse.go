package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fulfilment/internal/domain/warehouse"
	"fulfilment/internal/infrastructure/http/v1/dto"
)

// WarehouseHandler handles warehouse lifecycle endpoints.
type WarehouseHandler struct {
	*BaseHandler
	service *warehouse.Service
}

// NewWarehouseHandler creates a new warehouse handler.
func NewWarehouseHandler(base *BaseHandler, service *warehouse.Service) *WarehouseHandler {
	return &WarehouseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /warehouses - list active warehouses.
func (h *WarehouseHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      dto.FromWarehouses(items),
		TotalCount: int64(len(items)),
	})
}

// Get handles GET /warehouses/:code - get active warehouse by code.
func (h *WarehouseHandler) Get(c *gin.Context) {
	w, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromWarehouse(w))
}

// Create handles POST /warehouses.
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req dto.CreateWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	w := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), w); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromWarehouse(w))
}

// Replace handles PUT /warehouses/:code - archive the current holder of the
// code and activate a replacement carrying the same code.
func (h *WarehouseHandler) Replace(c *gin.Context) {
	var req dto.ReplaceWarehouseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	w := req.ToEntity(c.Param("code"))
	if err := h.service.Replace(c.Request.Context(), w); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromWarehouse(w))
}

// Archive handles DELETE /warehouses/:code - archive, not remove.
func (h *WarehouseHandler) Archive(c *gin.Context) {
	if err := h.service.Archive(c.Request.Context(), c.Param("code")); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
