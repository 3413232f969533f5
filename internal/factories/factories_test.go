package factories

import (
	"regexp"
	"testing"

	"github.com/chrisdamba/foodfleet/internal/catalog"
	"github.com/chrisdamba/foodfleet/internal/models"
)

var estimatePattern = regexp.MustCompile(`^\d+-\d+ min$`)

func TestCreateRestaurant(t *testing.T) {
	rf := NewRestaurantFactory(42)
	seen := map[string]bool{}

	for _, r := range rf.CreateRestaurants(25) {
		if r.ID == "" || seen[r.ID] {
			t.Fatalf("expected unique non-empty id, got %q", r.ID)
		}
		seen[r.ID] = true
		if r.Name == "" {
			t.Error("expected a name")
		}
		if r.Rating < 1 || r.Rating > 5 {
			t.Errorf("rating out of range: %v", r.Rating)
		}
		if !estimatePattern.MatchString(r.DeliveryTimeEstimate) {
			t.Errorf("unexpected estimate %q", r.DeliveryTimeEstimate)
		}
		if catalog.DeliveryLowerBound(r.DeliveryTimeEstimate) < 10 {
			t.Errorf("lower bound too small in %q", r.DeliveryTimeEstimate)
		}
		if n := len(r.Cuisines); n < 1 || n > 3 {
			t.Errorf("expected 1 to 3 cuisines, got %d", n)
		}
		tags := map[string]bool{}
		for _, c := range r.Cuisines {
			if tags[c] {
				t.Errorf("duplicate cuisine %q", c)
			}
			tags[c] = true
		}
	}
}

func TestCreateMenu(t *testing.T) {
	restaurant := NewRestaurantFactory(7).CreateRestaurant()
	mf := NewMenuItemFactory(7, nil)

	menu := mf.CreateMenu(restaurant, 6, 10)
	if n := menu.ItemCount(); n < 6 || n > 10 {
		t.Errorf("expected 6 to 10 items, got %d", n)
	}
	if len(menu.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(menu.Categories))
	}
	for _, c := range menu.Categories {
		if len(c.Items) == 0 {
			t.Errorf("category %s is empty", c.Name)
		}
		for _, item := range c.Items {
			if item.RestaurantID != restaurant.ID || item.Category != c.Name {
				t.Errorf("item %s not scoped to %s/%s", item.ID, restaurant.ID, c.Name)
			}
			if !item.Price.IsPositive() || item.Price.Exponent() < -2 {
				t.Errorf("unexpected price %s for %s", item.Price, item.Name)
			}
			if c.Name != "Main Courses" && len(item.Customizations) > 0 {
				t.Errorf("only main courses get customizations, %s has %d", item.Name, len(item.Customizations))
			}
			for _, g := range item.Customizations {
				if g.Required && (g.Mode != models.SelectionSingle || len(g.Options) == 0) {
					t.Errorf("required group %s must be single with a default option", g.ID)
				}
			}
		}
	}
}

func TestCreateMenu_UsesConfiguredDishes(t *testing.T) {
	restaurant := models.Restaurant{ID: "r1", Cuisines: []string{"Unknown"}}
	mf := NewMenuItemFactory(1, []models.MenuDish{{Name: "House Stew"}})

	item := mf.CreateMenuItem(restaurant, "Main Courses")
	if item.Name != "House Stew" {
		t.Errorf("expected configured dish, got %q", item.Name)
	}

	item = NewMenuItemFactory(1, nil).CreateMenuItem(models.Restaurant{ID: "r2"}, "Main Courses")
	if item.Name != "Special of the Day" {
		t.Errorf("expected fallback dish, got %q", item.Name)
	}
}

func TestCreateMenu_ClampsBounds(t *testing.T) {
	menu := NewMenuItemFactory(3, nil).CreateMenu(models.Restaurant{ID: "r"}, 0, 0)
	if menu.ItemCount() != 4 {
		t.Errorf("expected one item per category, got %d", menu.ItemCount())
	}
}
