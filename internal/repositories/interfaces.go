package repositories

import (
	"context"

	"github.com/chrisdamba/foodfleet/internal/models"
)

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, menus []models.RestaurantMenu) error
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id string) (*models.RestaurantMenu, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menus []models.RestaurantMenu) error
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuCategory, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
