package pricing

import (
	"time"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/lucsky/cuid"
	"github.com/shopspring/decimal"
)

// Rules holds the knobs of the pricing engine.
type Rules struct {
	DeliveryFee   decimal.Decimal
	TaxRate       decimal.Decimal
	PromoCode     string
	PromoDiscount decimal.Decimal
	MinQuantity   int
	MaxQuantity   int
}

// DefaultRules returns the stock rules: a 5.00 delivery fee, 8% tax, SAVE15
// for 15% off and line quantities between 1 and 99.
func DefaultRules() Rules {
	return Rules{
		DeliveryFee:   decimal.RequireFromString(models.DefaultDeliveryFee),
		TaxRate:       decimal.RequireFromString(models.DefaultTaxRate),
		PromoCode:     models.DefaultPromoCode,
		PromoDiscount: decimal.RequireFromString(models.DefaultPromoDiscount),
		MinQuantity:   models.DefaultMinLineQuantity,
		MaxQuantity:   models.DefaultMaxLineQuantity,
	}
}

func RulesFromConfig(cfg models.PricingConfig) Rules {
	return Rules{
		DeliveryFee:   cfg.DeliveryFee,
		TaxRate:       cfg.TaxRate,
		PromoCode:     cfg.PromoCode,
		PromoDiscount: cfg.PromoDiscount,
		MinQuantity:   cfg.MinQuantity,
		MaxQuantity:   cfg.MaxQuantity,
	}
}

type Engine struct {
	rules Rules
	newID func() string
	now   func() time.Time
}

type Option func(*Engine)

// WithIDGenerator replaces cuid as the source of line and order ids.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(e *Engine) { e.now = fn }
}

func NewEngine(rules Rules, opts ...Option) *Engine {
	e := &Engine{
		rules: rules,
		newID: cuid.New,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Rules() Rules { return e.rules }

// ComputeLineUnitPrice adds the modifiers of every selected option to the
// item's base price. Groups without a selection and unknown option ids
// contribute nothing.
func (e *Engine) ComputeLineUnitPrice(item models.MenuItem, selections models.Selections) decimal.Decimal {
	price := item.Price
	for _, group := range item.Customizations {
		sel, ok := selections[group.ID]
		if !ok || sel == nil {
			continue
		}
		for _, optionID := range selectedOptionIDs(group, sel) {
			opt, ok := group.Option(optionID)
			if !ok {
				continue
			}
			price = price.Add(opt.PriceModifier)
		}
	}
	return price
}

// ValidateRequiredSelections returns a *MissingGroupError for the first
// required group, in declared order, that has no selection.
func (e *Engine) ValidateRequiredSelections(item models.MenuItem, selections models.Selections) error {
	for _, group := range item.Customizations {
		if !group.Required {
			continue
		}
		sel, ok := selections[group.ID]
		if !ok || sel == nil || len(selectedOptionIDs(group, sel)) == 0 {
			return &MissingGroupError{GroupID: group.ID, GroupTitle: group.Title}
		}
	}
	return nil
}

// LineTotal is the line's unit price times its quantity.
func (e *Engine) LineTotal(line models.CartLine) decimal.Decimal {
	return e.ComputeLineUnitPrice(line.Item, line.Selections).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// selectedOptionIDs resolves a selection against the group's mode. A single
// group only honours a SingleChoice; a multi group also accepts a
// SingleChoice as a one-element set.
func selectedOptionIDs(group models.CustomizationGroup, sel models.Selection) []string {
	switch group.Mode {
	case models.SelectionSingle:
		if s, ok := sel.(models.SingleChoice); ok && !s.Empty() {
			return []string{string(s)}
		}
		return nil
	case models.SelectionMulti:
		return sel.OptionIDs()
	}
	return nil
}
