package pricing

import (
	"errors"
	"fmt"
)

const (
	ErrMsgEmptyCart        = "Your cart is empty. Please add items before proceeding."
	ErrMsgQuantityBelowMin = "Quantity must be at least %d"
	ErrMsgLineNotFound     = "Item not in cart"
	ErrMsgMissingSelection = "Please select an option for %s."
	MsgPromotionApplied    = "Promo code %q applied! You get %s%% off."
	MsgPromotionInvalid    = "Invalid or expired promo code."
)

var (
	ErrQuantityBelowMinimum = errors.New("quantity below minimum")
	ErrLineNotFound         = errors.New(ErrMsgLineNotFound)
	ErrEmptyCart            = errors.New(ErrMsgEmptyCart)
)

// MissingGroupError reports the first required customization group without a selection.
type MissingGroupError struct {
	GroupID    string
	GroupTitle string
}

func (e *MissingGroupError) Error() string {
	return fmt.Sprintf(ErrMsgMissingSelection, e.GroupTitle)
}

// QuantityError wraps ErrQuantityBelowMinimum with the offending value.
type QuantityError struct {
	Requested int
	Minimum   int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf(ErrMsgQuantityBelowMin, e.Minimum) + fmt.Sprintf(", got %d", e.Requested)
}

func (e *QuantityError) Unwrap() error { return ErrQuantityBelowMinimum }
