package handlers

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/domain/catalogs/client"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// ClientHandler serves the customer catalog plus credit operations.
type ClientHandler struct {
	*CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]

	service *client.Service
}

// NewClientHandler creates the client catalog handler.
func NewClientHandler(service *client.Service) *ClientHandler {
	base := NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreateClientRequest) (*client.Client, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdateClientRequest, c *client.Client) error {
			r.ApplyTo(c)
			return nil
		},
	)
	return &ClientHandler{CatalogHandler: base, service: service}
}

// GetCredit handles GET /:id/credit, the customer's credit standing.
func (h *ClientHandler) GetCredit(c *gin.Context) {
	clientID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	credit, err := h.service.CreditSnapshot(c.Request.Context(), clientID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{
		"customerId":    credit.CustomerID,
		"creditLimit":   credit.Limit,
		"creditBalance": credit.Balance,
		"creditDays":    credit.Days,
		"available":     credit.Available(),
		"updatedAt":     credit.UpdatedAt,
	})
}

// RegisterPayment handles POST /:id/payments: an abono reducing the
// customer's credit balance.
func (h *ClientHandler) RegisterPayment(c *gin.Context) {
	clientID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.RegisterClientPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.RegisterPayment(c.Request.Context(), clientID, req.Amount); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "payment registered")
}
