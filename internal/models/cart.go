package models

import "github.com/shopspring/decimal"

type CartLine struct {
	ID         string     `json:"id"`
	Item       MenuItem   `json:"item"`
	Quantity   int        `json:"quantity"`
	Selections Selections `json:"-"`
}

type Cart struct {
	Lines        []CartLine `json:"lines"`
	PromoCode    string     `json:"promo_code,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
}

func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

// Line returns the index of the line with the given id, or -1.
func (c *Cart) Line(lineID string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return i
		}
	}
	return -1
}

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Rounded returns the totals rounded half away from zero to two places, for display.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:    t.Subtotal.Round(2),
		Discount:    t.Discount.Round(2),
		DeliveryFee: t.DeliveryFee.Round(2),
		Tax:         t.Tax.Round(2),
		Total:       t.Total.Round(2),
	}
}
