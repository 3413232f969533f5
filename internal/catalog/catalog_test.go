package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

type fixtureSource struct {
	restaurants []models.Restaurant
	menus       map[string]models.RestaurantMenu
	err         error
}

func (f *fixtureSource) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Restaurant(nil), f.restaurants...), nil
}

func (f *fixtureSource) GetMenu(ctx context.Context, restaurantID string) (*models.RestaurantMenu, error) {
	menu, ok := f.menus[restaurantID]
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	return &menu, nil
}

func seedSource() *fixtureSource {
	return &fixtureSource{restaurants: SeedRestaurants(), menus: SeedMenus()}
}

func ids(restaurants []models.Restaurant) []string {
	out := make([]string, len(restaurants))
	for i, r := range restaurants {
		out[i] = r.ID
	}
	return out
}

func names(restaurants []models.Restaurant) []string {
	out := make([]string, len(restaurants))
	for i, r := range restaurants {
		out[i] = r.Name
	}
	return out
}

func TestFilter_EmptyTermReturnsAllInOrder(t *testing.T) {
	data := SeedRestaurants()
	for _, term := range []string{"", "   "} {
		got := Filter(data, term)
		if diff := cmp.Diff(ids(data), ids(got)); diff != "" {
			t.Errorf("term %q changed the catalog (-want +got):\n%s", term, diff)
		}
	}
}

func TestFilter_MatchesNameOrCuisine(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"PIZZA", []string{"1", "10"}},
		{"sushi", []string{"2"}},
		{"  curry ", []string{"5"}},
		{"asian", []string{"2"}},
		{"ice cream", []string{"9"}},
		{"an", []string{"1", "2", "3", "4", "5", "6", "10"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Filter(SeedRestaurants(), tt.term)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("unexpected matches (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterByCuisine(t *testing.T) {
	got := FilterByCuisine(SeedRestaurants(), "italian")
	if diff := cmp.Diff([]string{"1", "10"}, ids(got)); diff != "" {
		t.Errorf("unexpected matches (-want +got):\n%s", diff)
	}
	if got := FilterByCuisine(SeedRestaurants(), "Ital"); len(got) != 0 {
		t.Errorf("expected exact tag match only, got %v", ids(got))
	}
	if got := FilterByCuisine(SeedRestaurants(), ""); len(got) != 10 {
		t.Errorf("expected no filtering, got %d", len(got))
	}
}

func TestSort_RatingDescIsStable(t *testing.T) {
	in := []models.Restaurant{
		{ID: "a", Rating: 4.2},
		{ID: "b", Rating: 4.8},
		{ID: "c", Rating: 4.2},
	}

	got := Sort(in, models.SortRatingDesc, "en")
	if diff := cmp.Diff([]string{"b", "a", "c"}, ids(got)); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids(in)); diff != "" {
		t.Errorf("input was reordered (-want +got):\n%s", diff)
	}
}

func TestSort_DeliveryTimeAsc(t *testing.T) {
	in := []models.Restaurant{
		{ID: "slow", DeliveryTimeEstimate: "35-45 min"},
		{ID: "broken", DeliveryTimeEstimate: "soon"},
		{ID: "fast", DeliveryTimeEstimate: "15-20 min"},
		{ID: "empty", DeliveryTimeEstimate: ""},
		{ID: "tie-1", DeliveryTimeEstimate: "20-30 min"},
		{ID: "tie-2", DeliveryTimeEstimate: " 20-25 min"},
	}

	got := Sort(in, models.SortDeliveryTimeAsc, "en")
	want := []string{"fast", "tie-1", "tie-2", "slow", "broken", "empty"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestSort_NameAscIsLocaleAware(t *testing.T) {
	in := []models.Restaurant{
		{ID: "1", Name: "Zoe's"},
		{ID: "2", Name: "Émile Bistro"},
		{ID: "3", Name: "apple grill"},
		{ID: "4", Name: "Banana Leaf"},
	}

	got := Sort(in, models.SortNameAsc, "en")
	want := []string{"apple grill", "Banana Leaf", "Émile Bistro", "Zoe's"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, names(Sort(in, models.SortNameAsc, "not a locale"))); diff != "" {
		t.Errorf("invalid locale should fall back to English (-want +got):\n%s", diff)
	}
}

func TestDeliveryLowerBound(t *testing.T) {
	tests := map[string]int{
		"20-30 min": 20,
		"5-10 min":  5,
		"  45 min":  45,
		"120":       120,
		"soon":      math.MaxInt,
		"-10 min":   math.MaxInt,
		"":          math.MaxInt,
	}
	for in, want := range tests {
		if got := DeliveryLowerBound(in); got != want {
			t.Errorf("DeliveryLowerBound(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPaginate(t *testing.T) {
	data := SeedRestaurants()

	tests := []struct {
		name      string
		items     []models.Restaurant
		page      int
		size      int
		wantPage  int
		wantTotal int
		wantLen   int
	}{
		{"first page", data, 1, 8, 1, 2, 8},
		{"last page", data, 2, 8, 2, 2, 2},
		{"beyond last clamps", data, 5, 8, 2, 2, 2},
		{"zero clamps to first", data, 0, 8, 1, 2, 8},
		{"negative clamps to first", data, -3, 8, 1, 2, 8},
		{"exact fit", data[:8], 1, 8, 1, 1, 8},
		{"default size", data, 1, 0, 1, 2, 8},
		{"empty", nil, 3, 8, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.items, tt.page, tt.size)
			if got.Page != tt.wantPage || got.TotalPages != tt.wantTotal || len(got.Items) != tt.wantLen {
				t.Errorf("got page=%d totalPages=%d len=%d, want page=%d totalPages=%d len=%d",
					got.Page, got.TotalPages, len(got.Items), tt.wantPage, tt.wantTotal, tt.wantLen)
			}
		})
	}

	empty := Paginate(nil, 1, 8)
	if !empty.Empty() || empty.HasNext() || empty.HasPrev() {
		t.Errorf("unexpected empty page state: %+v", empty)
	}
	last := Paginate(data, 2, 8)
	if diff := cmp.Diff([]string{"9", "10"}, ids(last.Items)); diff != "" {
		t.Errorf("unexpected last page (-want +got):\n%s", diff)
	}
	if !last.HasPrev() || last.HasNext() {
		t.Errorf("unexpected navigation on last page: %+v", last)
	}
}

func renderWindow(markers []PageMarker) string {
	parts := make([]string, len(markers))
	for i, m := range markers {
		switch {
		case m.Ellipsis:
			parts[i] = "..."
		case m.Current:
			parts[i] = fmt.Sprintf("[%d]", m.Number)
		default:
			parts[i] = fmt.Sprint(m.Number)
		}
	}
	return strings.Join(parts, " ")
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 0, ""},
		{1, 1, "[1]"},
		{2, 3, "1 [2] 3"},
		{5, 5, "1 2 3 4 [5]"},
		{1, 10, "[1] 2 3 ... 10"},
		{3, 10, "1 2 [3] ... 10"},
		{4, 10, "1 ... 3 [4] 5 ... 10"},
		{5, 10, "1 ... 4 [5] 6 ... 10"},
		{8, 10, "1 ... [8] 9 10"},
		{10, 10, "1 ... 8 9 [10]"},
		{3, 6, "1 2 [3] ... 6"},
		{4, 6, "1 ... [4] 5 6"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.current, tt.total), func(t *testing.T) {
			if got := renderWindow(PageWindow(tt.current, tt.total)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuery_Transitions(t *testing.T) {
	q := NewQuery().WithSearch("pizza").WithPage(3)
	if q.Page != 3 || q.Search != "pizza" || q.Sort != models.SortRatingDesc {
		t.Fatalf("unexpected query %+v", q)
	}

	if got := q.WithSearch("sushi"); got.Page != 1 {
		t.Errorf("search change should reset page, got %d", got.Page)
	}
	if got := q.WithSort(models.SortNameAsc); got.Page != 1 || got.Search != "pizza" {
		t.Errorf("sort change should reset page only, got %+v", got)
	}
	if got := q.WithCuisine("Italian"); got.Page != 1 {
		t.Errorf("cuisine change should reset page, got %d", got.Page)
	}
	if got := q.WithPage(2); got.Search != "pizza" || got.Sort != models.SortRatingDesc {
		t.Errorf("page change should keep search and sort, got %+v", got)
	}
	if q.Page != 3 {
		t.Errorf("query values must not be mutated, got page %d", q.Page)
	}
}

func TestService_Run(t *testing.T) {
	svc := NewService(seedSource(), models.CatalogConfig{PageSize: 8, Locale: "en"}, zap.NewNop())
	ctx := context.Background()

	page, err := svc.Run(ctx, NewQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"8", "2", "5", "9", "4", "1", "6", "7"}
	if diff := cmp.Diff(want, ids(page.Items)); diff != "" {
		t.Errorf("unexpected first page by rating (-want +got):\n%s", diff)
	}
	if page.TotalPages != 2 || page.TotalItems != 10 {
		t.Errorf("expected 2 pages of 10 items, got %+v", page)
	}

	page, _ = svc.Run(ctx, NewQuery().WithPage(5))
	if page.Page != 2 || len(page.Items) != 2 {
		t.Errorf("expected clamped page 2 with 2 items, got page %d with %d", page.Page, len(page.Items))
	}

	page, _ = svc.Run(ctx, NewQuery().WithSearch("pizza").WithSort(models.SortNameAsc))
	if diff := cmp.Diff([]string{"Italiano Delight", "Pizza Planet"}, names(page.Items)); diff != "" {
		t.Errorf("unexpected search result (-want +got):\n%s", diff)
	}

	page, _ = svc.Run(ctx, NewQuery().WithCuisine("Italian").WithSearch("planet"))
	if diff := cmp.Diff([]string{"10"}, ids(page.Items)); diff != "" {
		t.Errorf("unexpected cuisine+search result (-want +got):\n%s", diff)
	}

	page, _ = svc.Run(ctx, NewQuery().WithSearch("nothing matches this"))
	if !page.Empty() || page.TotalPages != 0 || page.Page != 1 {
		t.Errorf("expected empty result with 0 pages, got %+v", page)
	}
}

func TestService_RunPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&fixtureSource{err: boom}, models.CatalogConfig{}, nil)
	if _, err := svc.Run(context.Background(), NewQuery()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped source error, got %v", err)
	}
	if svc.PageSize() != models.DefaultPageSize {
		t.Errorf("expected default page size, got %d", svc.PageSize())
	}
}

func TestService_Menu(t *testing.T) {
	svc := NewService(seedSource(), models.CatalogConfig{}, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Menu(ctx, ""); !errors.Is(err, ErrMissingRestaurant) {
		t.Errorf("expected ErrMissingRestaurant, got %v", err)
	}
	if _, err := svc.Menu(ctx, "404"); !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("expected ErrRestaurantNotFound, got %v", err)
	}

	menu, err := svc.Menu(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if menu.Restaurant.Name != "The Gourmet Kitchen" || menu.ReviewsCount != 520 || len(menu.Categories) != 4 {
		t.Errorf("unexpected menu details: %+v", menu.Restaurant)
	}

	item, err := svc.MenuItem(ctx, "1", "item201")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Grilled Salmon" || !item.HasRequiredGroups() || item.RestaurantID != "1" {
		t.Errorf("unexpected item %+v", item)
	}
	if _, err := svc.MenuItem(ctx, "1", "item999"); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestService_Cuisines(t *testing.T) {
	svc := NewService(seedSource(), models.CatalogConfig{}, zap.NewNop())
	got, err := svc.Cuisines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 28 || got[0] != "Italian" || got[1] != "Pizza" {
		t.Errorf("unexpected cuisines %v", got)
	}
}
