package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
)

var _ catalog.Source = (*Catalog)(nil)

// Catalog is a read-only in-process catalog. Every read returns a deep copy
// so callers cannot alter the stored data.
type Catalog struct {
	restaurants []models.Restaurant
	menus       map[string]models.RestaurantMenu
}

func NewCatalog(restaurants []models.Restaurant, menus map[string]models.RestaurantMenu) *Catalog {
	c := &Catalog{
		restaurants: append([]models.Restaurant(nil), restaurants...),
		menus:       make(map[string]models.RestaurantMenu, len(menus)),
	}
	for id, m := range menus {
		c.menus[id] = m
	}
	return c
}

// FromMenus lists every menu's restaurant in the given order.
func FromMenus(menus []models.RestaurantMenu) *Catalog {
	restaurants := make([]models.Restaurant, 0, len(menus))
	byID := make(map[string]models.RestaurantMenu, len(menus))
	for _, m := range menus {
		restaurants = append(restaurants, m.Restaurant)
		byID[m.Restaurant.ID] = m
	}
	return NewCatalog(restaurants, byID)
}

// NewSeedCatalog serves the placeholder listing and menus.
func NewSeedCatalog() *Catalog {
	return NewCatalog(catalog.SeedRestaurants(), catalog.SeedMenus())
}

func (c *Catalog) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, len(c.restaurants))
	for i, r := range c.restaurants {
		r.Cuisines = append([]string(nil), r.Cuisines...)
		out[i] = r
	}
	return out, nil
}

func (c *Catalog) GetMenu(ctx context.Context, restaurantID string) (*models.RestaurantMenu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	menu, ok := c.menus[restaurantID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrRestaurantNotFound, restaurantID)
	}
	return cloneMenu(menu)
}

func (c *Catalog) Count() int { return len(c.restaurants) }

// Menus returns a copy of every stored menu in listing order.
func (c *Catalog) Menus() ([]models.RestaurantMenu, error) {
	out := make([]models.RestaurantMenu, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		m, err := cloneMenu(c.menus[r.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

func cloneMenu(menu models.RestaurantMenu) (*models.RestaurantMenu, error) {
	data, err := json.Marshal(menu)
	if err != nil {
		return nil, fmt.Errorf("copying menu %s: %w", menu.Restaurant.ID, err)
	}
	var out models.RestaurantMenu
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("copying menu %s: %w", menu.Restaurant.ID, err)
	}
	return &out, nil
}
