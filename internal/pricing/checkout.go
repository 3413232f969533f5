package pricing

import (
	"github.com/chrisdamba/foodfleet/internal/models"
)

// Checkout builds an order summary from the cart. The cart itself is not
// cleared.
func (e *Engine) Checkout(cart *models.Cart, restaurantID string) (models.Order, error) {
	if cart.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	lines := make([]models.OrderLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		unit := e.ComputeLineUnitPrice(line.Item, line.Selections)
		lines = append(lines, models.OrderLine{
			LineID:    line.ID,
			ItemID:    line.Item.ID,
			Name:      line.Item.Name,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			LineTotal: e.LineTotal(line),
			Options:   optionIDs(line.Selections),
		})
	}

	promo := ""
	if e.promotionActive(cart) {
		promo = cart.PromoCode
	}

	return models.Order{
		ID:           e.newID(),
		RestaurantID: restaurantID,
		Lines:        lines,
		Totals:       e.ComputeTotals(cart),
		PromoCode:    promo,
		Instructions: cart.Instructions,
		Stage:        models.OrderStagePlaced,
		PlacedAt:     e.now().UTC(),
	}, nil
}

func optionIDs(selections models.Selections) map[string][]string {
	if len(selections) == 0 {
		return nil
	}
	out := make(map[string][]string, len(selections))
	for groupID, sel := range selections {
		if sel == nil || sel.Empty() {
			continue
		}
		out[groupID] = sel.OptionIDs()
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
