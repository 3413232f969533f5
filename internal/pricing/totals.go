package pricing

import (
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/shopspring/decimal"
)

// ComputeTotals aggregates the cart. Nothing is rounded here; use
// Totals.Rounded for display.
func (e *Engine) ComputeTotals(cart *models.Cart) models.Totals {
	subtotal := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(e.LineTotal(line))
	}

	discount := decimal.Zero
	if e.promotionActive(cart) {
		discount = subtotal.Mul(e.rules.PromoDiscount)
	}

	deliveryFee := decimal.Zero
	if len(cart.Lines) > 0 {
		deliveryFee = e.rules.DeliveryFee
	}

	taxable := subtotal.Sub(discount)
	tax := taxable.Mul(e.rules.TaxRate)

	return models.Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       taxable.Add(deliveryFee).Add(tax),
	}
}
