// Package pricing computes order totals from live catalog state. It is
// the single point where a current menu price becomes the frozen price
// carried on an order line.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"naija-aroma/internal/errs"
	"naija-aroma/internal/models"
)

// LineRequest is one requested order line.
type LineRequest struct {
	MenuItemID string
	Quantity   int32
	Notes      *string
}

// QuotedLine is a priced line with its snapshot price.
type QuotedLine struct {
	MenuItemID string
	Quantity   int32
	Price      decimal.Decimal
	LineTotal  decimal.Decimal
	Notes      *string
}

// Quote is the priced result for an order request.
type Quote struct {
	Lines       []QuotedLine
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Engine computes order totals. It holds only configuration and is safe
// for concurrent use.
type Engine struct {
	freeThreshold decimal.Decimal
	defaultFee    decimal.Decimal
}

// NewEngine creates a pricing engine with the configured delivery fee
// rule: DELIVERY orders below freeThreshold pay defaultFee, orders at or
// above it ship free.
func NewEngine(freeThreshold, defaultFee decimal.Decimal) *Engine {
	return &Engine{freeThreshold: freeThreshold, defaultFee: defaultFee}
}

// ComputeOrderTotal prices the requested lines against the given catalog
// snapshot. Every referenced item must exist in the catalog and be
// available; otherwise the whole computation fails and no partial quote
// is produced.
func (e *Engine) ComputeOrderTotal(lines []LineRequest, catalog map[string]*models.MenuItem, orderType models.OrderType) (*Quote, error) {
	quote := &Quote{
		Lines:    make([]QuotedLine, 0, len(lines)),
		Subtotal: decimal.Zero,
	}

	for _, line := range lines {
		item, ok := catalog[line.MenuItemID]
		if !ok || !item.IsAvailable {
			return nil, errs.Validation("One or more menu items are not available")
		}
		if line.Quantity <= 0 {
			return nil, errs.Validation(fmt.Sprintf("Invalid quantity for menu item %s", item.Name))
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt32(line.Quantity))
		quote.Lines = append(quote.Lines, QuotedLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			Price:      item.Price,
			LineTotal:  lineTotal,
			Notes:      line.Notes,
		})
		quote.Subtotal = quote.Subtotal.Add(lineTotal)
	}

	quote.DeliveryFee = e.deliveryFee(quote.Subtotal, orderType)
	quote.Total = quote.Subtotal.Add(quote.DeliveryFee)
	return quote, nil
}

// deliveryFee applies the flat-fee rule. Pickup orders never pay a fee.
// Distance-based fees are intentionally absent.
func (e *Engine) deliveryFee(subtotal decimal.Decimal, orderType models.OrderType) decimal.Decimal {
	if orderType != models.OrderTypeDelivery {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(e.freeThreshold) {
		return decimal.Zero
	}
	return e.defaultFee
}
