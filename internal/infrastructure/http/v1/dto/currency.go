package dto

import (
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain/catalogs/currency"
)

// CreateCurrencyRequest creates a currency.
type CreateCurrencyRequest struct {
	Code         string      `json:"code" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	Abbreviation string      `json:"abbreviation" binding:"required"`
	Symbol       *string     `json:"symbol"`
	ExchangeRate types.Money `json:"exchangeRate"`
	IsBase       bool        `json:"isBase"`
}

// ToEntity converts the request to a domain entity.
func (r *CreateCurrencyRequest) ToEntity() *currency.Currency {
	c := currency.NewCurrency(r.Code, r.Name, r.Abbreviation, r.ExchangeRate)
	c.Symbol = r.Symbol
	c.IsBase = r.IsBase
	return c
}

// UpdateCurrencyRequest updates a currency.
type UpdateCurrencyRequest struct {
	Code         string      `json:"code" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	Abbreviation string      `json:"abbreviation" binding:"required"`
	Symbol       *string     `json:"symbol"`
	ExchangeRate types.Money `json:"exchangeRate"`
	IsBase       bool        `json:"isBase"`
	Version      int         `json:"version" binding:"required"`
}

// ApplyTo copies request fields onto an existing entity.
func (r *UpdateCurrencyRequest) ApplyTo(c *currency.Currency) {
	c.Code = r.Code
	c.Name = r.Name
	c.Abbreviation = r.Abbreviation
	c.Symbol = r.Symbol
	c.ExchangeRate = r.ExchangeRate
	c.IsBase = r.IsBase
	c.Version = r.Version
}
