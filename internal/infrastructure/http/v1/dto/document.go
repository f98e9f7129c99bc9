package dto

import (
	"time"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/entity"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
	"puntoventa/internal/domain"
	"puntoventa/internal/domain/cart"
	"puntoventa/internal/domain/checkout"
)

// DocumentListQuery captures document list parameters. Date bounds use
// RFC 3339; status is "pending" or "issued".
type DocumentListQuery struct {
	ListQuery

	ClientID   string `form:"clientId"`
	SupplierID string `form:"supplierId"`
	StoreID    string `form:"storeId"`
	RegisterID string `form:"registerId"`
	Status     string `form:"status"`
	DateFrom   string `form:"dateFrom"`
	DateTo     string `form:"dateTo"`
	Folio      string `form:"folio"`
}

// ParseID parses an optional ID query parameter.
func ParseID(value, field string) (*id.ID, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := id.Parse(value)
	if err != nil {
		return nil, apperror.NewValidation("invalid id").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return &parsed, nil
}

// ParseStatus parses an optional document status query parameter.
func ParseStatus(value string) (*entity.DocumentStatus, error) {
	if value == "" {
		return nil, nil
	}
	status := entity.DocumentStatus(value)
	if status != entity.StatusPending && status != entity.StatusIssued {
		return nil, apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", value)
	}
	return &status, nil
}

// ParseDate parses an optional RFC 3339 date query parameter.
func ParseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Accept plain dates too
		t, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, apperror.NewValidation("invalid date, expected RFC 3339 or YYYY-MM-DD").
				WithDetail("field", field).
				WithDetail("value", value)
		}
	}
	return &t, nil
}

// ToBaseFilter converts the common part of the query to a domain filter.
func (q *DocumentListQuery) ToBaseFilter() domain.ListFilter {
	filter := domain.DefaultListFilter()
	filter.Search = q.Folio
	filter.IncludeDeleted = q.IncludeDeleted
	if q.OrderBy != "" {
		filter.OrderBy = q.OrderBy
	} else {
		filter.OrderBy = "-date"
	}
	if q.Limit > 0 {
		filter.Limit = q.Limit
	}
	if q.Offset > 0 {
		filter.Offset = q.Offset
	}
	return filter
}

// SubmitRequest is the checkout submission body. Unit amounts and
// currency conversion are resolved server-side from the catalogs; the
// client only names products, quantities, methods and entered amounts.
// Store/register fall back to the operator session when absent.
type SubmitRequest struct {
	Intent         checkout.Intent `json:"intent"`
	CounterpartyID id.ID           `json:"counterpartyId" binding:"required"`
	StoreID        id.ID           `json:"storeId"`
	RegisterID     id.ID           `json:"registerId"`
	Lines          []SubmitLine    `json:"lines" binding:"required,min=1"`
	Payments       []SubmitPayment `json:"payments"`
}

// SubmitLine is one line of the submission.
type SubmitLine struct {
	ProductID id.ID `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// SubmitPayment is one payment entry of the submission.
type SubmitPayment struct {
	MethodID       id.ID       `json:"methodId" binding:"required"`
	OriginalAmount types.Money `json:"originalAmount"`
	CurrencyAbbr   string      `json:"currencyAbbr"`
}

// ToInput converts the request to the assembler input for the given mode.
func (r *SubmitRequest) ToInput(mode cart.Mode) checkout.SubmitInput {
	in := checkout.SubmitInput{
		Mode:           mode,
		Intent:         r.Intent,
		CounterpartyID: r.CounterpartyID,
		StoreID:        r.StoreID,
		RegisterID:     r.RegisterID,
	}
	for _, line := range r.Lines {
		in.Lines = append(in.Lines, checkout.SubmitLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	for _, pay := range r.Payments {
		in.Payments = append(in.Payments, checkout.SubmitPayment{
			MethodID:       pay.MethodID,
			OriginalAmount: pay.OriginalAmount,
			CurrencyAbbr:   pay.CurrencyAbbr,
		})
	}
	return in
}
