package models

type Restaurant struct {
	ID       string   `json:"id" mapstructure:"id"`
	Name     string   `json:"name" mapstructure:"name"`
	Cuisines []string `json:"cuisines" mapstructure:"cuisines"`
	Rating   float64  `json:"rating" mapstructure:"rating"`
	// DeliveryTimeEstimate is a range string such as "20-30 min".
	DeliveryTimeEstimate string `json:"delivery_time_estimate" mapstructure:"delivery_time_estimate"`
	ImageURL             string `json:"image_url" mapstructure:"image_url"`
	// Favorite is session-local and never persisted.
	Favorite bool `json:"favorite" mapstructure:"-"`
}

// RestaurantMenu is the detail view of a restaurant together with its
// categorised menu.
type RestaurantMenu struct {
	Restaurant   Restaurant     `json:"restaurant"`
	Address      string         `json:"address"`
	Description  string         `json:"description"`
	Cuisine      string         `json:"cuisine"`
	ReviewsCount int            `json:"reviews_count"`
	OpeningHours string         `json:"opening_hours"`
	Categories   []MenuCategory `json:"categories"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Item finds a menu item by id across all categories.
func (m RestaurantMenu) Item(itemID string) (MenuItem, bool) {
	for _, c := range m.Categories {
		for _, it := range c.Items {
			if it.ID == itemID {
				return it, true
			}
		}
	}
	return MenuItem{}, false
}

// ItemCount returns the number of items across all categories.
func (m RestaurantMenu) ItemCount() int {
	n := 0
	for _, c := range m.Categories {
		n += len(c.Items)
	}
	return n
}
