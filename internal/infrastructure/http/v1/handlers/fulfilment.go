package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fulfilment/internal/core/apperror"
	"fulfilment/internal/core/id"
	"fulfilment/internal/domain/fulfilment"
	"fulfilment/internal/infrastructure/http/v1/dto"
)

// FulfilmentHandler handles fulfilment link endpoints.
type FulfilmentHandler struct {
	*BaseHandler
	service *fulfilment.Service
}

// NewFulfilmentHandler creates a new fulfilment handler.
func NewFulfilmentHandler(base *BaseHandler, service *fulfilment.Service) *FulfilmentHandler {
	return &FulfilmentHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /fulfilments with an optional ?storeId= filter.
func (h *FulfilmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []*fulfilment.Fulfilment
		err   error
	)

	if storeIDStr := c.Query("storeId"); storeIDStr != "" {
		storeID, parseErr := id.Parse(storeIDStr)
		if parseErr != nil {
			h.Error(c, apperror.NewValidation("invalid storeId format"))
			return
		}
		items, err = h.service.GetByStoreID(ctx, storeID)
	} else {
		items, err = h.service.GetAll(ctx)
	}

	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      dto.FromFulfilments(items),
		TotalCount: int64(len(items)),
	})
}

// Create handles POST /fulfilments.
func (h *FulfilmentHandler) Create(c *gin.Context) {
	var req dto.CreateFulfilmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	f, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("error", err.Error()))
		return
	}

	if err := h.service.Create(c.Request.Context(), f); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromFulfilment(f))
}

// Delete handles DELETE /fulfilments/:id.
func (h *FulfilmentHandler) Delete(c *gin.Context) {
	fulfilmentID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), fulfilmentID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
