package catalog

import (
	"context"
	"errors"

	"github.com/chrisdamba/foodfleet/internal/models"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMissingRestaurant  = errors.New("restaurant ID is missing")
)

// Source supplies read-only catalog data. Implementations must return copies
// the caller may modify.
type Source interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) (*models.RestaurantMenu, error)
}
