// Package paymentmethod provides the Payment Method catalog.
package paymentmethod

import (
	"context"
	"regexp"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
)

// ReservedCreditClave is the clave of the built-in credit method. The
// method carries the customer's account balance instead of an immediate
// funds transfer; it is seeded once and cannot be edited or deleted.
const ReservedCreditClave = "CRED"

// Method represents a way of paying: cash, card, transfer, credit.
type Method struct {
	entity.Catalog

	// Clave is the short unique key (e.g., "EFE", "TAR", "CRED")
	Clave string `db:"clave" json:"clave"`

	// IsCredit marks the method as charging the customer's account
	// balance; credit entries go through the eligibility check.
	IsCredit bool `db:"is_credit" json:"isCredit"`
}

// NewMethod creates a new payment Method.
func NewMethod(clave, name string) *Method {
	return &Method{
		Catalog: entity.NewCatalog(clave, name),
		Clave:   clave,
	}
}

// NewCreditMethod creates the reserved credit method.
func NewCreditMethod(name string) *Method {
	m := NewMethod(ReservedCreditClave, name)
	m.IsCredit = true
	return m
}

var claveRe = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// Validate implements entity.Validatable interface.
func (m *Method) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !claveRe.MatchString(m.Clave) {
		return apperror.NewValidation("clave must be 2-10 uppercase letters or digits").
			WithDetail("field", "clave").
			WithDetail("value", m.Clave)
	}

	// The reserved clave always carries the credit flag.
	if m.Clave == ReservedCreditClave && !m.IsCredit {
		return apperror.NewValidation("reserved credit method must keep its credit flag").
			WithDetail("clave", m.Clave)
	}

	return nil
}

// IsReserved reports whether this is the protected credit method.
func (m *Method) IsReserved() bool {
	return m.Clave == ReservedCreditClave
}
