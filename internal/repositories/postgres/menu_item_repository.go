package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

// copier is satisfied by both *pgxpool.Pool and pgx.Tx.
type copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type menuItemRow struct {
	item       models.MenuItem
	categoryID string
	position   int
}

func flattenMenus(menus []models.RestaurantMenu) []menuItemRow {
	var rows []menuItemRow
	for _, m := range menus {
		position := 0
		for _, c := range m.Categories {
			for _, item := range c.Items {
				item.RestaurantID = m.Restaurant.ID
				item.Category = c.Name
				rows = append(rows, menuItemRow{item: item, categoryID: c.ID, position: position})
				position++
			}
		}
	}
	return rows
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menus []models.RestaurantMenu) error {
	return copyMenuItems(ctx, r.pool, menus)
}

func copyMenuItems(ctx context.Context, db copier, menus []models.RestaurantMenu) error {
	rows := flattenMenus(menus)
	_, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "restaurant_id", "category_id", "category", "position",
			"name", "description", "price", "image_url", "customizations",
		},
		pgx.CopyFromSlice(len(rows), func(i int) ([]interface{}, error) {
			row := rows[i]
			var price pgtype.Numeric
			if err := price.Scan(row.item.Price.StringFixed(2)); err != nil {
				return nil, fmt.Errorf("encoding price of %s: %w", row.item.ID, err)
			}
			customizations, err := encodeCustomizations(row.item.Customizations)
			if err != nil {
				return nil, err
			}
			return []interface{}{
				row.item.ID,
				row.item.RestaurantID,
				row.categoryID,
				row.item.Category,
				row.position,
				row.item.Name,
				row.item.Description,
				price,
				row.item.ImageURL,
				customizations,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copying menu items: %w", err)
	}
	return nil
}

// GetByRestaurantID returns the menu grouped into categories, in the order
// the items were stored.
func (r *MenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuCategory, error) {
	query := `
        SELECT id, restaurant_id, category_id, category, name, description,
            price::text, image_url, customizations
        FROM menu_items
        WHERE restaurant_id = $1
        ORDER BY position
    `
	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.MenuCategory
	index := map[string]int{}
	for rows.Next() {
		var (
			item           models.MenuItem
			categoryID     string
			price          string
			customizations []byte
		)
		err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&categoryID,
			&item.Category,
			&item.Name,
			&item.Description,
			&price,
			&item.ImageURL,
			&customizations,
		)
		if err != nil {
			return nil, err
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("decoding price of %s: %w", item.ID, err)
		}
		if item.Customizations, err = decodeCustomizations(customizations); err != nil {
			return nil, fmt.Errorf("decoding customizations of %s: %w", item.ID, err)
		}

		idx, ok := index[categoryID]
		if !ok {
			idx = len(categories)
			index[categoryID] = idx
			categories = append(categories, models.MenuCategory{ID: categoryID, Name: item.Category})
		}
		categories[idx].Items = append(categories[idx].Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}
	return categories, nil
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items")
	return err
}

func encodeCustomizations(groups []models.CustomizationGroup) ([]byte, error) {
	if groups == nil {
		groups = []models.CustomizationGroup{}
	}
	return json.Marshal(groups)
}

func decodeCustomizations(data []byte) ([]models.CustomizationGroup, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var groups []models.CustomizationGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}
	return groups, nil
}
