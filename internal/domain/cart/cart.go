// Package cart implements the in-progress transaction cart: an ordered set
// of line items with derived subtotal, tax and grand totals.
package cart

import (
	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/types"
)

// Mode selects which side of the product's price pair the cart uses.
type Mode string

const (
	// ModeSale uses the product's price* fields.
	ModeSale Mode = "sale"
	// ModePurchase uses the product's cost* fields.
	ModePurchase Mode = "purchase"
)

// Product is the read-only catalog snapshot the cart consumes.
// Callers build it from the product catalog entry at selection time.
type Product struct {
	ID         id.ID
	Name       string
	CostBase   types.Money
	CostFinal  types.Money
	PriceBase  types.Money
	PriceFinal types.Money
}

// LineItem is one product row in the cart.
// Quantity is always >= 1; removal deletes the row instead of zeroing it.
type LineItem struct {
	ProductID id.ID       `json:"productId"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitBase  types.Money `json:"unitBase"`
	UnitFinal types.Money `json:"unitFinal"`
}

// LineTotal returns UnitFinal * Quantity at full precision.
func (li LineItem) LineTotal() types.Money {
	return li.UnitFinal.Mul(types.NewMoney(float64(li.Quantity)))
}

// Cart holds the line items of one in-progress sale or purchase.
// Order is insertion order; re-adding an existing product increments its
// quantity rather than appending a duplicate row. Totals are never cached,
// every read recomputes from the current items.
type Cart struct {
	mode  Mode
	items []*LineItem
}

// New creates an empty cart in the given mode.
func New(mode Mode) *Cart {
	return &Cart{mode: mode}
}

// Mode returns the cart mode.
func (c *Cart) Mode() Mode {
	return c.mode
}

// AddOrIncrement adds the product to the cart. If a row for the product
// already exists its quantity is incremented; otherwise a new row is
// appended with quantity 1 and unit amounts copied from the snapshot
// (cost* in purchase mode, price* in sale mode).
func (c *Cart) AddOrIncrement(p Product) {
	for _, item := range c.items {
		if item.ProductID == p.ID {
			item.Quantity++
			return
		}
	}

	item := &LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  1,
	}
	if c.mode == ModePurchase {
		item.UnitBase = p.CostBase
		item.UnitFinal = p.CostFinal
	} else {
		item.UnitBase = p.PriceBase
		item.UnitFinal = p.PriceFinal
	}
	c.items = append(c.items, item)
}

// SetQuantity changes a row's quantity. Quantities below 1 clamp to 1;
// deleting a row goes through Remove. Returns a not-found error when the
// product is not in the cart.
func (c *Cart) SetQuantity(productID id.ID, quantity int) error {
	for _, item := range c.items {
		if item.ProductID == productID {
			if quantity < 1 {
				quantity = 1
			}
			item.Quantity = quantity
			return nil
		}
	}
	return apperror.NewNotFound("cart line", productID.String())
}

// Remove deletes the row for the product. Idempotent when absent.
func (c *Cart) Remove(productID id.ID) {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart (new transaction, post-submission reset).
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, item := range c.items {
		out[i] = *item
	}
	return out
}

// Len returns the number of rows.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no rows.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal is the tax-exclusive total, rounded to 2 places.
func (c *Cart) Subtotal() types.Money {
	sum := types.Zero()
	for _, item := range c.items {
		qty := types.NewMoney(float64(item.Quantity))
		sum = sum.Add(item.UnitBase.Mul(qty))
	}
	return types.Round2(sum)
}

// TaxTotal is the accumulated tax amount, rounded to 2 places.
func (c *Cart) TaxTotal() types.Money {
	sum := types.Zero()
	for _, item := range c.items {
		qty := types.NewMoney(float64(item.Quantity))
		sum = sum.Add(item.UnitFinal.Sub(item.UnitBase).Mul(qty))
	}
	return types.Round2(sum)
}

// Total is the tax-inclusive grand total, rounded to 2 places.
// Equals Subtotal + TaxTotal because both derive from the same unit pair.
func (c *Cart) Total() types.Money {
	sum := types.Zero()
	for _, item := range c.items {
		sum = sum.Add(item.LineTotal())
	}
	return types.Round2(sum)
}
