package handlers

import (
	"fulfilment/internal/domain/store"
	"fulfilment/internal/infrastructure/http/v1/dto"
)

// StoreHTTPHandler handles store catalog endpoints.
type StoreHTTPHandler = CatalogHandler[
	*store.Store,
	dto.CreateStoreRequest,
	dto.UpdateStoreRequest,
]

// NewStoreHandler wires the generic catalog handler for stores.
func NewStoreHandler(
	base *BaseHandler,
	service *store.Service,
) *StoreHTTPHandler {

	config := CatalogHandlerConfig[
		*store.Store,
		dto.CreateStoreRequest,
		dto.UpdateStoreRequest,
	]{
		Service: service.CatalogService,

		MapCreateDTO: func(req dto.CreateStoreRequest) *store.Store {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateStoreRequest, existing *store.Store) *store.Store {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *store.Store) any {
			return dto.FromStore(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
