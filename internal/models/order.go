package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the summary produced when a cart is checked out.
type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id,omitempty"`
	Lines        []OrderLine `json:"lines"`
	Totals       Totals      `json:"totals"`
	PromoCode    string      `json:"promo_code,omitempty"`
	Instructions string      `json:"instructions,omitempty"`
	Stage        OrderStage  `json:"stage"`
	PlacedAt     time.Time   `json:"placed_at"`
}

type OrderLine struct {
	LineID    string              `json:"line_id"`
	ItemID    string              `json:"item_id"`
	Name      string              `json:"name"`
	Quantity  int                 `json:"quantity"`
	UnitPrice decimal.Decimal     `json:"unit_price"`
	LineTotal decimal.Decimal     `json:"line_total"`
	Options   map[string][]string `json:"options,omitempty"`
}
