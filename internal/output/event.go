package output

import (
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
)

// CheckoutEvent is the flat record published for every checkout. Lines are
// carried as a JSON string so every destination can store them in one column.
type CheckoutEvent struct {
	Timestamp    int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType    string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderID      string `json:"orderId" parquet:"name=orderId,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID string `json:"restaurantId,omitempty" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Stage        string `json:"stage" parquet:"name=stage,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemCount    int32  `json:"itemCount" parquet:"name=itemCount,type=INT32"`
	Lines        string `json:"lines" parquet:"name=lines,type=BYTE_ARRAY,convertedtype=UTF8"`
	Subtotal     string `json:"subtotal" parquet:"name=subtotal,type=BYTE_ARRAY,convertedtype=UTF8"`
	Discount     string `json:"discount" parquet:"name=discount,type=BYTE_ARRAY,convertedtype=UTF8"`
	DeliveryFee  string `json:"deliveryFee" parquet:"name=deliveryFee,type=BYTE_ARRAY,convertedtype=UTF8"`
	Tax          string `json:"tax" parquet:"name=tax,type=BYTE_ARRAY,convertedtype=UTF8"`
	Total        string `json:"total" parquet:"name=total,type=BYTE_ARRAY,convertedtype=UTF8"`
	PromoCode    string `json:"promoCode,omitempty" parquet:"name=promoCode,type=BYTE_ARRAY,convertedtype=UTF8"`
	Instructions string `json:"instructions,omitempty" parquet:"name=instructions,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type eventLine struct {
	LineID    string              `json:"lineId"`
	ItemID    string              `json:"itemId"`
	Name      string              `json:"name"`
	Quantity  int                 `json:"quantity"`
	UnitPrice string              `json:"unitPrice"`
	LineTotal string              `json:"lineTotal"`
	Options   map[string][]string `json:"options,omitempty"`
}

// NewCheckoutEvent flattens an order. Money fields are rounded to cents here,
// at the edge, and nowhere earlier.
func NewCheckoutEvent(order models.Order) (CheckoutEvent, error) {
	lines := make([]eventLine, 0, len(order.Lines))
	var count int
	for _, l := range order.Lines {
		lines = append(lines, eventLine{
			LineID:    l.LineID,
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			LineTotal: l.LineTotal.StringFixed(2),
			Options:   l.Options,
		})
		count += l.Quantity
	}
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return CheckoutEvent{}, fmt.Errorf("encoding lines of %s: %w", order.ID, err)
	}

	totals := order.Totals.Rounded()
	return CheckoutEvent{
		Timestamp:    order.PlacedAt.Unix(),
		EventType:    "checkout",
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Stage:        string(order.Stage),
		ItemCount:    int32(count),
		Lines:        string(linesJSON),
		Subtotal:     totals.Subtotal.StringFixed(2),
		Discount:     totals.Discount.StringFixed(2),
		DeliveryFee:  totals.DeliveryFee.StringFixed(2),
		Tax:          totals.Tax.StringFixed(2),
		Total:        totals.Total.StringFixed(2),
		PromoCode:    order.PromoCode,
		Instructions: order.Instructions,
	}, nil
}

// decodeRecord parses a published message into the parquet record.
func decodeRecord(msg []byte) (CheckoutEvent, error) {
	var event CheckoutEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return CheckoutEvent{}, fmt.Errorf("decoding checkout event: %w", err)
	}
	return event, nil
}
