package models

import "github.com/shopspring/decimal"

type SelectionMode string

const (
	// SelectionSingle allows exactly one option (radio).
	SelectionSingle SelectionMode = "single"
	// SelectionMulti allows zero or more options (checkbox).
	SelectionMulti SelectionMode = "multi"
)

type CustomizationOption struct {
	ID    string `json:"id" mapstructure:"id"`
	Label string `json:"label" mapstructure:"label"`
	// PriceModifier is added per unit when the option is selected. Zero means no change.
	PriceModifier decimal.Decimal `json:"price_modifier" mapstructure:"price_modifier"`
}

type CustomizationGroup struct {
	ID       string                `json:"id" mapstructure:"id"`
	Title    string                `json:"title" mapstructure:"title"`
	Mode     SelectionMode         `json:"mode" mapstructure:"mode"`
	Required bool                  `json:"required" mapstructure:"required"`
	Options  []CustomizationOption `json:"options" mapstructure:"options"`
}

// Option returns the option with the given id, if the group declares it.
func (g CustomizationGroup) Option(optionID string) (CustomizationOption, bool) {
	for _, opt := range g.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return CustomizationOption{}, false
}

type MenuItem struct {
	ID             string               `json:"id" mapstructure:"id"`
	RestaurantID   string               `json:"restaurant_id" mapstructure:"restaurant_id"`
	Name           string               `json:"name" mapstructure:"name"`
	Description    string               `json:"description" mapstructure:"description"`
	Price          decimal.Decimal      `json:"price" mapstructure:"price"`
	ImageURL       string               `json:"image_url" mapstructure:"image_url"`
	Category       string               `json:"category" mapstructure:"category"`
	Customizations []CustomizationGroup `json:"customizations,omitempty" mapstructure:"customizations"`
}

// Clone copies the item together with its customization groups and options.
func (m MenuItem) Clone() MenuItem {
	if m.Customizations == nil {
		return m
	}
	groups := make([]CustomizationGroup, len(m.Customizations))
	for i, g := range m.Customizations {
		g.Options = append([]CustomizationOption(nil), g.Options...)
		groups[i] = g
	}
	m.Customizations = groups
	return m
}

// Group looks up a customization group by id.
func (m MenuItem) Group(groupID string) (CustomizationGroup, bool) {
	for _, g := range m.Customizations {
		if g.ID == groupID {
			return g, true
		}
	}
	return CustomizationGroup{}, false
}

// HasRequiredGroups reports whether any group must be filled before adding to a cart.
func (m MenuItem) HasRequiredGroups() bool {
	for _, g := range m.Customizations {
		if g.Required {
			return true
		}
	}
	return false
}
