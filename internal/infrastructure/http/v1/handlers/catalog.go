package handlers

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/entity"
	"puntoventa/internal/domain"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// CatalogHandler provides generic CRUD endpoints for catalog entities.
// C and U are the create/update request DTOs; mapping funcs bridge them
// to the domain entity.
type CatalogHandler[T entity.Validatable, C any, U any] struct {
	BaseHandler

	service     *domain.CatalogService[T]
	mapCreate   func(*C) (T, error)
	applyUpdate func(*U, T) error
}

// NewCatalogHandler creates a handler for one catalog.
func NewCatalogHandler[T entity.Validatable, C any, U any](
	service *domain.CatalogService[T],
	mapCreate func(*C) (T, error),
	applyUpdate func(*U, T) error,
) *CatalogHandler[T, C, U] {
	return &CatalogHandler[T, C, U]{
		service:     service,
		mapCreate:   mapCreate,
		applyUpdate: applyUpdate,
	}
}

// List handles GET "" with search, pagination and ordering.
func (h *CatalogHandler[T, C, U]) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := domain.DefaultListFilter()
	filter.Search = query.Search
	filter.IncludeDeleted = query.IncludeDeleted
	if query.OrderBy != "" {
		filter.OrderBy = query.OrderBy
	}
	if query.Limit > 0 {
		filter.Limit = query.Limit
	}
	if query.Offset > 0 {
		filter.Offset = query.Offset
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}

// Create handles POST "".
func (h *CatalogHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !h.BindJSON(c, &req) {
		return
	}

	ent, err := h.mapCreate(&req)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), ent); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, ent)
}

// GetByID handles GET ":id".
func (h *CatalogHandler[T, C, U]) GetByID(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	ent, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, ent)
}

// Update handles PUT ":id". The request carries the expected version;
// a stale version surfaces as a conflict.
func (h *CatalogHandler[T, C, U]) Update(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req U
	if !h.BindJSON(c, &req) {
		return
	}

	ent, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.applyUpdate(&req, ent); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), ent); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, ent)
}

// Delete handles DELETE ":id" (physical removal).
func (h *CatalogHandler[T, C, U]) Delete(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// SetDeletionMark handles POST ":id/deletion-mark" (soft delete toggle).
func (h *CatalogHandler[T, C, U]) SetDeletionMark(c *gin.Context) {
	entityID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.SetDeletionMarkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDeletionMark(c.Request.Context(), entityID, req.Marked); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "deletion mark updated")
}
