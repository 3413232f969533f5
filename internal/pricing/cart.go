package pricing

import (
	"github.com/chrisdamba/foodfleet/internal/models"
)

// AddToCart validates the selections and appends a new line holding a copy of
// them. On any error the cart is left untouched. Quantities above the maximum
// are clamped.
func (e *Engine) AddToCart(cart *models.Cart, item models.MenuItem, quantity int, selections models.Selections) (models.CartLine, error) {
	if quantity < e.rules.MinQuantity {
		return models.CartLine{}, &QuantityError{Requested: quantity, Minimum: e.rules.MinQuantity}
	}
	if err := e.ValidateRequiredSelections(item, selections); err != nil {
		return models.CartLine{}, err
	}

	line := models.CartLine{
		ID:         e.newID(),
		Item:       item.Clone(),
		Quantity:   e.clampQuantity(quantity),
		Selections: selections.Clone(),
	}
	cart.Lines = append(cart.Lines, line)
	return line, nil
}

// SetLineQuantity rejects values below the minimum and clamps values above
// the maximum. It returns the quantity actually stored.
func (e *Engine) SetLineQuantity(cart *models.Cart, lineID string, quantity int) (int, error) {
	idx := cart.Line(lineID)
	if idx < 0 {
		return 0, ErrLineNotFound
	}
	if quantity < e.rules.MinQuantity {
		return cart.Lines[idx].Quantity, &QuantityError{Requested: quantity, Minimum: e.rules.MinQuantity}
	}
	cart.Lines[idx].Quantity = e.clampQuantity(quantity)
	return cart.Lines[idx].Quantity, nil
}

// RemoveLine deletes the line if present and reports whether it did. The
// cart gets a fresh slice; copies taken earlier keep their lines.
func (e *Engine) RemoveLine(cart *models.Cart, lineID string) bool {
	idx := cart.Line(lineID)
	if idx < 0 {
		return false
	}
	lines := make([]models.CartLine, 0, len(cart.Lines)-1)
	lines = append(lines, cart.Lines[:idx]...)
	cart.Lines = append(lines, cart.Lines[idx+1:]...)
	return true
}

func (e *Engine) SetInstructions(cart *models.Cart, instructions string) {
	cart.Instructions = instructions
}

// Clear removes every line. The promotion and instructions stay.
func (e *Engine) Clear(cart *models.Cart) {
	cart.Lines = []models.CartLine{}
}

func (e *Engine) clampQuantity(quantity int) int {
	if quantity > e.rules.MaxQuantity {
		return e.rules.MaxQuantity
	}
	if quantity < e.rules.MinQuantity {
		return e.rules.MinQuantity
	}
	return quantity
}
