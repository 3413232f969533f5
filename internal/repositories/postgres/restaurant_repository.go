package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

var restaurantColumns = []string{
	"id", "name", "cuisines", "rating", "delivery_time_estimate", "image_url",
	"address", "description", "cuisine", "reviews_count", "opening_hours",
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, menus []models.RestaurantMenu) error {
	return copyRestaurants(ctx, r.pool, menus)
}

func copyRestaurants(ctx context.Context, db copier, menus []models.RestaurantMenu) error {
	_, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"restaurants"},
		restaurantColumns,
		pgx.CopyFromSlice(len(menus), func(i int) ([]interface{}, error) {
			m := menus[i]
			return []interface{}{
				m.Restaurant.ID,
				m.Restaurant.Name,
				m.Restaurant.Cuisines,
				m.Restaurant.Rating,
				m.Restaurant.DeliveryTimeEstimate,
				m.Restaurant.ImageURL,
				m.Address,
				m.Description,
				m.Cuisine,
				m.ReviewsCount,
				m.OpeningHours,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copying restaurants: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	query := `
        SELECT id, name, cuisines, rating, delivery_time_estimate, image_url
        FROM restaurants
        ORDER BY seq
    `
	return r.queryRestaurants(ctx, query)
}

func (r *RestaurantRepository) queryRestaurants(ctx context.Context, query string, args ...interface{}) ([]models.Restaurant, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var restaurant models.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Cuisines,
			&restaurant.Rating,
			&restaurant.DeliveryTimeEstimate,
			&restaurant.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}
	return restaurants, nil
}

// GetByID loads the restaurant detail record without its categories.
func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*models.RestaurantMenu, error) {
	query := `
        SELECT id, name, cuisines, rating, delivery_time_estimate, image_url,
            address, description, cuisine, reviews_count, opening_hours
        FROM restaurants
        WHERE id = $1
    `
	var m models.RestaurantMenu
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.Restaurant.ID,
		&m.Restaurant.Name,
		&m.Restaurant.Cuisines,
		&m.Restaurant.Rating,
		&m.Restaurant.DeliveryTimeEstimate,
		&m.Restaurant.ImageURL,
		&m.Address,
		&m.Description,
		&m.Cuisine,
		&m.ReviewsCount,
		&m.OpeningHours,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrRestaurantNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants CASCADE")
	return err
}
