package dto

import "puntoventa/internal/domain/catalogs/paymentmethod"

// CreatePaymentMethodRequest creates a payment method.
type CreatePaymentMethodRequest struct {
	Clave    string `json:"clave" binding:"required"`
	Name     string `json:"name" binding:"required"`
	IsCredit bool   `json:"isCredit"`
}

// ToEntity converts the request to a domain entity.
func (r *CreatePaymentMethodRequest) ToEntity() *paymentmethod.Method {
	m := paymentmethod.NewMethod(r.Clave, r.Name)
	m.IsCredit = r.IsCredit
	return m
}

// UpdatePaymentMethodRequest updates a payment method.
type UpdatePaymentMethodRequest struct {
	Clave    string `json:"clave" binding:"required"`
	Name     string `json:"name" binding:"required"`
	IsCredit bool   `json:"isCredit"`
	Version  int    `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdatePaymentMethodRequest) ApplyTo(m *paymentmethod.Method) {
	m.Code = r.Clave
	m.Clave = r.Clave
	m.Name = r.Name
	m.IsCredit = r.IsCredit
	m.Version = r.Version
}
