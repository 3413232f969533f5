package postgres

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ repositories.RestaurantRepository = (*RestaurantRepository)(nil)
	_ repositories.MenuItemRepository   = (*MenuItemRepository)(nil)
	_ catalog.Source                    = (*Catalog)(nil)
)

// Catalog serves restaurants and menus from postgres.
type Catalog struct {
	pool        *pgxpool.Pool
	restaurants repositories.RestaurantRepository
	menuItems   repositories.MenuItemRepository
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{
		pool:        pool,
		restaurants: NewRestaurantRepository(pool),
		menuItems:   NewMenuItemRepository(pool),
	}
}

func (c *Catalog) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return c.restaurants.GetAll(ctx)
}

func (c *Catalog) GetMenu(ctx context.Context, restaurantID string) (*models.RestaurantMenu, error) {
	menu, err := c.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if menu.Categories, err = c.menuItems.GetByRestaurantID(ctx, restaurantID); err != nil {
		return nil, fmt.Errorf("loading menu items: %w", err)
	}
	return menu, nil
}

// Save stores restaurants and their menu items in one transaction.
func (c *Catalog) Save(ctx context.Context, menus []models.RestaurantMenu) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := copyRestaurants(ctx, tx, menus); err != nil {
		return err
	}
	if err := copyMenuItems(ctx, tx, menus); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Reset removes every restaurant and, by cascade, every menu item.
func (c *Catalog) Reset(ctx context.Context) error {
	return c.restaurants.DeleteAll(ctx)
}

func (c *Catalog) Counts(ctx context.Context) (restaurants, items int, err error) {
	if restaurants, err = c.restaurants.Count(ctx); err != nil {
		return 0, 0, err
	}
	if items, err = c.menuItems.Count(ctx); err != nil {
		return 0, 0, err
	}
	return restaurants, items, nil
}
