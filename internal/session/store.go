package session

import (
	"context"
	"sort"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/chrisdamba/foodfleet/internal/pricing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns everything a single shopping session mutates: the cart, the
// favorites and the current catalog query. A new session gets a new Store.
// A Store is not safe for concurrent use.
type Store struct {
	ID        string
	Cart      *models.Cart
	Query     catalog.Query
	engine    *pricing.Engine
	favorites map[string]struct{}
	logger    *zap.Logger
}

type Option func(*Store)

// WithFavorites seeds the favorites set.
func WithFavorites(restaurantIDs ...string) Option {
	return func(s *Store) {
		for _, id := range restaurantIDs {
			s.favorites[id] = struct{}{}
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func NewStore(engine *pricing.Engine, opts ...Option) *Store {
	s := &Store{
		ID:        uuid.NewString(),
		Cart:      models.NewCart(),
		Query:     catalog.NewQuery(),
		engine:    engine,
		favorites: make(map[string]struct{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.ID))
	return s
}

func (s *Store) Engine() *pricing.Engine { return s.engine }

// ToggleFavorite flips the favorite flag and returns the new state.
func (s *Store) ToggleFavorite(restaurantID string) bool {
	if _, ok := s.favorites[restaurantID]; ok {
		delete(s.favorites, restaurantID)
		return false
	}
	s.favorites[restaurantID] = struct{}{}
	return true
}

func (s *Store) IsFavorite(restaurantID string) bool {
	_, ok := s.favorites[restaurantID]
	return ok
}

// Favorites returns the favorite restaurant ids in sorted order.
func (s *Store) Favorites() []string {
	out := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Store) SetSearch(term string)      { s.Query = s.Query.WithSearch(term) }
func (s *Store) SetSort(key models.SortKey) { s.Query = s.Query.WithSort(key) }
func (s *Store) SetCuisine(cuisine string)  { s.Query = s.Query.WithCuisine(cuisine) }
func (s *Store) SetPage(page int)           { s.Query = s.Query.WithPage(page) }

// Browse runs the current query and marks favorites on the returned page. The
// stored page number is updated to the clamped value.
func (s *Store) Browse(ctx context.Context, svc *catalog.Service) (catalog.Page, error) {
	page, err := svc.Run(ctx, s.Query)
	if err != nil {
		return catalog.Page{}, err
	}
	for i := range page.Items {
		page.Items[i].Favorite = s.IsFavorite(page.Items[i].ID)
	}
	s.Query.Page = page.Page
	return page, nil
}

// AddItem adds a menu item to the session cart, logging rejections.
func (s *Store) AddItem(item models.MenuItem, quantity int, selections models.Selections) (models.CartLine, error) {
	line, err := s.engine.AddToCart(s.Cart, item, quantity, selections)
	if err != nil {
		s.logger.Info("add to cart rejected",
			zap.String("item_id", item.ID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		return models.CartLine{}, err
	}
	s.logger.Debug("line added",
		zap.String("line_id", line.ID),
		zap.String("item_id", item.ID),
		zap.Int("quantity", line.Quantity),
	)
	return line, nil
}

func (s *Store) ApplyPromotion(code string) pricing.PromotionResult {
	res := s.engine.ApplyPromotion(s.Cart, code)
	s.logger.Debug("promotion", zap.String("code", code), zap.Bool("applied", res.Applied))
	return res
}

func (s *Store) Totals() models.Totals {
	return s.engine.ComputeTotals(s.Cart)
}

// Checkout summarises the cart as an order for restaurantID.
func (s *Store) Checkout(restaurantID string) (models.Order, error) {
	order, err := s.engine.Checkout(s.Cart, restaurantID)
	if err != nil {
		return models.Order{}, err
	}
	s.logger.Info("checkout",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Lines)),
		zap.String("total", order.Totals.Rounded().Total.StringFixed(2)),
	)
	return order, nil
}
