package handlers

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/domain/catalogs/currency"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// CurrencyHandler serves the currency catalog plus conversion lookups.
type CurrencyHandler struct {
	*CatalogHandler[*currency.Currency, dto.CreateCurrencyRequest, dto.UpdateCurrencyRequest]

	service *currency.Service
}

// NewCurrencyHandler creates the currency catalog handler.
func NewCurrencyHandler(service *currency.Service) *CurrencyHandler {
	base := NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateCurrencyRequest) (*currency.Currency, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdateCurrencyRequest, c *currency.Currency) error {
			r.ApplyTo(c)
			return nil
		},
	)
	return &CurrencyHandler{CatalogHandler: base, service: service}
}

// GetBase handles GET /base: the home (accounting) currency.
func (h *CurrencyHandler) GetBase(c *gin.Context) {
	curr, err := h.service.GetBase(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, curr)
}

// GetByAbbreviation handles GET /by-abbreviation/:abbr.
func (h *CurrencyHandler) GetByAbbreviation(c *gin.Context) {
	curr, err := h.service.FindByAbbreviation(c.Request.Context(), c.Param("abbr"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, curr)
}
