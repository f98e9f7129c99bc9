// Package client provides the Client catalog: sale counterparties with an
// optional credit line.
package client

import (
	"context"
	"time"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/payment"
)

// Client represents a customer.
type Client struct {
	entity.Catalog

	RFC   *string `db:"rfc" json:"rfc,omitempty"`
	Phone *string `db:"phone" json:"phone,omitempty"`
	Email *string `db:"email" json:"email,omitempty"`

	// CreditLimit is the maximum the customer may owe; zero disables credit
	CreditLimit types.Money `db:"credit_limit" json:"creditLimit"`

	// CreditBalance is the amount currently owed
	CreditBalance types.Money `db:"credit_balance" json:"creditBalance"`

	// CreditDays is the grace period before outstanding credit expires
	CreditDays int `db:"credit_days" json:"creditDays"`

	// CreditUpdatedAt is the base date for the expiration window
	CreditUpdatedAt time.Time `db:"credit_updated_at" json:"creditUpdatedAt"`
}

// NewClient creates a new Client with required fields.
func NewClient(code, name string) *Client {
	return &Client{
		Catalog:         entity.NewCatalog(code, name),
		CreditUpdatedAt: time.Now(),
	}
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.CreditLimit.IsNegative() {
		return apperror.NewValidation("credit limit cannot be negative").
			WithDetail("field", "creditLimit")
	}
	if c.CreditBalance.IsNegative() {
		return apperror.NewValidation("credit balance cannot be negative").
			WithDetail("field", "creditBalance")
	}
	if c.CreditDays < 0 {
		return apperror.NewValidation("credit days cannot be negative").
			WithDetail("field", "creditDays")
	}

	return nil
}

// HasCredit reports whether the customer has a credit line at all.
func (c *Client) HasCredit() bool {
	return c.CreditLimit.IsPositive()
}

// CreditSnapshot returns the immutable view the eligibility check consumes.
func (c *Client) CreditSnapshot() payment.CustomerCredit {
	return payment.CustomerCredit{
		CustomerID: c.ID,
		Limit:      c.CreditLimit,
		Balance:    c.CreditBalance,
		Days:       c.CreditDays,
		UpdatedAt:  c.CreditUpdatedAt,
	}
}

// AddCharge increases the owed balance after a credit sale is issued.
func (c *Client) AddCharge(amount types.Money, now time.Time) error {
	if !amount.IsPositive() {
		return apperror.NewValidation("charge amount must be positive").
			WithDetail("amount", amount.String())
	}
	c.CreditBalance = c.CreditBalance.Add(amount)
	c.CreditUpdatedAt = now
	return nil
}

// RegisterPayment reduces the owed balance. The payment must be positive
// and cannot exceed what is owed.
func (c *Client) RegisterPayment(amount types.Money, now time.Time) error {
	if !amount.IsPositive() {
		return apperror.NewValidation("payment amount must be positive").
			WithDetail("amount", amount.String())
	}
	if !c.CreditBalance.IsPositive() {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"customer has no outstanding balance")
	}
	if amount.GreaterThan(c.CreditBalance) {
		return apperror.NewValidation("payment exceeds outstanding balance").
			WithDetail("amount", amount.String()).
			WithDetail("balance", c.CreditBalance.String())
	}
	c.CreditBalance = c.CreditBalance.Sub(amount)
	c.CreditUpdatedAt = now
	return nil
}
