package handlers

import (
	"puntoventa/internal/domain/catalogs/paymentmethod"
	"puntoventa/internal/infrastructure/http/v1/dto"
)

// PaymentMethodHandler serves the payment method catalog.
type PaymentMethodHandler = CatalogHandler[*paymentmethod.Method, dto.CreatePaymentMethodRequest, dto.UpdatePaymentMethodRequest]

// NewPaymentMethodHandler creates the payment method catalog handler.
func NewPaymentMethodHandler(service *paymentmethod.Service) *PaymentMethodHandler {
	return NewCatalogHandler(
		service.CatalogService,
		func(r *dto.CreatePaymentMethodRequest) (*paymentmethod.Method, error) {
			return r.ToEntity(), nil
		},
		func(r *dto.UpdatePaymentMethodRequest, m *paymentmethod.Method) error {
			r.ApplyTo(m)
			return nil
		},
	)
}
