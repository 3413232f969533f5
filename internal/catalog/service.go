package catalog

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
	"go.uber.org/zap"
)

type Service struct {
	source   Source
	pageSize int
	locale   string
	logger   *zap.Logger
}

func NewService(source Source, cfg models.CatalogConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}
	return &Service{source: source, pageSize: pageSize, locale: locale, logger: logger}
}

func (s *Service) PageSize() int { return s.pageSize }

// Run applies the cuisine filter, the search filter, the sort and the
// pagination, in that order.
func (s *Service) Run(ctx context.Context, q Query) (Page, error) {
	all, err := s.source.ListRestaurants(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("listing restaurants: %w", err)
	}

	matched := Filter(FilterByCuisine(all, q.Cuisine), q.Search)
	page := Paginate(Sort(matched, q.Sort, s.locale), q.Page, s.pageSize)

	s.logger.Debug("catalog query",
		zap.String("search", q.Search),
		zap.String("sort", string(q.Sort)),
		zap.String("cuisine", q.Cuisine),
		zap.Int("requested_page", q.Page),
		zap.Int("page", page.Page),
		zap.Int("total_pages", page.TotalPages),
		zap.Int("matches", page.TotalItems),
	)
	return page, nil
}

// Cuisines lists every distinct cuisine tag in catalog order.
func (s *Service) Cuisines(ctx context.Context) ([]string, error) {
	all, err := s.source.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants: %w", err)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range all {
		for _, c := range r.Cuisines {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) Menu(ctx context.Context, restaurantID string) (*models.RestaurantMenu, error) {
	if restaurantID == "" {
		return nil, ErrMissingRestaurant
	}
	menu, err := s.source.GetMenu(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("loading menu for restaurant %s: %w", restaurantID, err)
	}
	s.logger.Debug("menu loaded",
		zap.String("restaurant_id", restaurantID),
		zap.Int("categories", len(menu.Categories)),
		zap.Int("items", menu.ItemCount()),
	)
	return menu, nil
}

func (s *Service) MenuItem(ctx context.Context, restaurantID, itemID string) (models.MenuItem, error) {
	menu, err := s.Menu(ctx, restaurantID)
	if err != nil {
		return models.MenuItem{}, err
	}
	item, ok := menu.Item(itemID)
	if !ok {
		return models.MenuItem{}, fmt.Errorf("%w: %s", ErrMenuItemNotFound, itemID)
	}
	return item, nil
}
