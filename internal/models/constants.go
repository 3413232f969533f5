package models

type OrderStage string

const (
	OrderStagePlaced         OrderStage = "placed"
	OrderStagePreparing      OrderStage = "preparing"
	OrderStageOutForDelivery OrderStage = "out-for-delivery"
	OrderStageDelivered      OrderStage = "delivered"
)

// OrderStages lists the tracker stages in the order an order moves through them.
var OrderStages = []OrderStage{
	OrderStagePlaced,
	OrderStagePreparing,
	OrderStageOutForDelivery,
	OrderStageDelivered,
}

type SortKey string

const (
	SortRatingDesc      SortKey = "rating desc"
	SortDeliveryTimeAsc SortKey = "delivery-time asc"
	SortNameAsc         SortKey = "name asc"
)

const (
	DefaultSortKey         = SortRatingDesc
	DefaultPageSize        = 8
	DefaultDeliveryFee     = "5.00"
	DefaultTaxRate         = "0.08"
	DefaultPromoCode       = "SAVE15"
	DefaultPromoDiscount   = "0.15"
	DefaultMinLineQuantity = 1
	DefaultMaxLineQuantity = 99
	CheckoutEventsTopic    = "checkout_events"
)

// SortKeys lists every supported sort key.
var SortKeys = []SortKey{SortRatingDesc, SortDeliveryTimeAsc, SortNameAsc}

// ParseSortKey accepts the full key ("rating desc") or its short form ("rating").
func ParseSortKey(s string) (SortKey, bool) {
	switch s {
	case string(SortRatingDesc), "rating":
		return SortRatingDesc, true
	case string(SortDeliveryTimeAsc), "delivery-time", "delivery":
		return SortDeliveryTimeAsc, true
	case string(SortNameAsc), "name":
		return SortNameAsc, true
	}
	return "", false
}
