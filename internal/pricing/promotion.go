package pricing

import (
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/shopspring/decimal"
)

// PromotionResult reports the outcome of ApplyPromotion. An unknown code is
// not an error.
type PromotionResult struct {
	Applied bool
	Code    string
	Message string
}

// ApplyPromotion attaches code to the cart when it matches the configured
// promotion exactly. Any other code clears the current promotion.
func (e *Engine) ApplyPromotion(cart *models.Cart, code string) PromotionResult {
	if e.rules.PromoCode != "" && code == e.rules.PromoCode {
		cart.PromoCode = code
		percent := e.rules.PromoDiscount.Mul(decimal.NewFromInt(100))
		return PromotionResult{
			Applied: true,
			Code:    code,
			Message: fmt.Sprintf(MsgPromotionApplied, code, percent.String()),
		}
	}
	cart.PromoCode = ""
	return PromotionResult{Code: code, Message: MsgPromotionInvalid}
}

func (e *Engine) promotionActive(cart *models.Cart) bool {
	return cart.PromoCode != "" && cart.PromoCode == e.rules.PromoCode
}
