package handlers

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/domain/catalogs/register"
	"puntoventa/internal/domain/catalogs/store"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// StoreHandler serves the store catalog.
type StoreHandler = CatalogHandler[*store.Store, dto.CreateStoreRequest, dto.UpdateStoreRequest]

// NewStoreHandler creates the store catalog handler.
func NewStoreHandler(service *store.Service) *StoreHandler {
	return NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateStoreRequest) (*store.Store, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdateStoreRequest, s *store.Store) error {
			r.ApplyTo(s)
			return nil
		},
	)
}

// RegisterHandler serves the register (caja) catalog.
type RegisterHandler struct {
	*CatalogHandler[*register.Register, dto.CreateRegisterRequest, dto.UpdateRegisterRequest]

	service *register.Service
}

// NewRegisterHandler creates the register catalog handler.
func NewRegisterHandler(service *register.Service) *RegisterHandler {
	base := NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateRegisterRequest) (*register.Register, error) {
			return r.ToEntity()
		},
		func(r *dto.UpdateRegisterRequest, reg *register.Register) error {
			return r.ApplyTo(reg)
		},
	)
	return &RegisterHandler{CatalogHandler: base, service: service}
}

// ListByStore handles GET /by-store/:id: the registers of one store.
func (h *RegisterHandler) ListByStore(c *gin.Context) {
	storeID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	registers, err := h.service.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"items": registers})
}
