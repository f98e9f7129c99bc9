package dto

import (
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/catalogs/client"
)

// CreateClientRequest creates a customer. Credit balance always starts
// at zero; it only moves through sales and payment registrations.
type CreateClientRequest struct {
	Code        string      `json:"code" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	RFC         *string     `json:"rfc"`
	Phone       *string     `json:"phone"`
	Email       *string     `json:"email"`
	CreditLimit types.Money `json:"creditLimit"`
	CreditDays  int         `json:"creditDays"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateClientRequest) ToEntity() *client.Client {
	c := client.NewClient(r.Code, r.Name)
	c.RFC = r.RFC
	c.Phone = r.Phone
	c.Email = r.Email
	c.CreditLimit = r.CreditLimit
	c.CreditDays = r.CreditDays
	return c
}

// UpdateClientRequest updates customer data. The balance is
// deliberately absent: it cannot be edited through this endpoint.
type UpdateClientRequest struct {
	Code        string      `json:"code" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	RFC         *string     `json:"rfc"`
	Phone       *string     `json:"phone"`
	Email       *string     `json:"email"`
	CreditLimit types.Money `json:"creditLimit"`
	CreditDays  int         `json:"creditDays"`
	Version     int         `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) {
	c.Code = r.Code
	c.Name = r.Name
	c.RFC = r.RFC
	c.Phone = r.Phone
	c.Email = r.Email
	c.CreditLimit = r.CreditLimit
	c.CreditDays = r.CreditDays
	c.Version = r.Version
}

// RegisterClientPaymentRequest records an abono against the customer's
// credit balance.
type RegisterClientPaymentRequest struct {
	Amount types.Money `json:"amount" binding:"required"`
}
