package factories

import (
	"math/rand"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/shopspring/decimal"
)

var menuCategories = []string{"Appetizers", "Main Courses", "Desserts", "Drinks"}

var categoryItems = map[string][]string{
	"Appetizers": {"Garlic Bread", "Spring Rolls", "Bruschetta", "Chicken Wings", "Soup of the Day"},
	"Desserts":   {"Tiramisu", "Cheesecake", "Chocolate Brownie", "Mango Sticky Rice", "Baklava"},
	"Drinks":     {"Fresh Lemonade", "Iced Tea", "Sparkling Water", "Mango Lassi", "Espresso"},
}

type MenuItemFactory struct {
	fake   faker.Faker
	rng    *rand.Rand
	dishes []models.MenuDish
}

// NewMenuItemFactory builds menus from the cuisine dish table, or from dishes
// when provided.
func NewMenuItemFactory(seed int64, dishes []models.MenuDish) *MenuItemFactory {
	return &MenuItemFactory{
		fake:   faker.NewWithSeed(rand.NewSource(seed)),
		rng:    rand.New(rand.NewSource(seed + 1)),
		dishes: dishes,
	}
}

// CreateMenu returns a categorised menu with between minItems and maxItems
// items. Every category gets at least one item.
func (mf *MenuItemFactory) CreateMenu(restaurant models.Restaurant, minItems, maxItems int) models.RestaurantMenu {
	if minItems < len(menuCategories) {
		minItems = len(menuCategories)
	}
	if maxItems < minItems {
		maxItems = minItems
	}
	total := minItems + mf.rng.Intn(maxItems-minItems+1)

	categories := make([]models.MenuCategory, len(menuCategories))
	for i, name := range menuCategories {
		categories[i] = models.MenuCategory{ID: cuid.New(), Name: name}
	}
	for i := 0; i < total; i++ {
		idx := i % len(categories)
		if i >= len(categories) {
			idx = mf.rng.Intn(len(categories))
		}
		categories[idx].Items = append(categories[idx].Items, mf.CreateMenuItem(restaurant, categories[idx].Name))
	}

	cuisine := ""
	if len(restaurant.Cuisines) > 0 {
		cuisine = restaurant.Cuisines[0]
	}

	return models.RestaurantMenu{
		Restaurant:   restaurant,
		Address:      mf.fake.Address().Address(),
		Description:  mf.fake.Lorem().Sentence(12),
		Cuisine:      cuisine,
		ReviewsCount: mf.fake.IntBetween(0, 1000),
		OpeningHours: "10:00 AM - 11:00 PM",
		Categories:   categories,
	}
}

func (mf *MenuItemFactory) CreateMenuItem(restaurant models.Restaurant, category string) models.MenuItem {
	item := models.MenuItem{
		ID:           cuid.New(),
		RestaurantID: restaurant.ID,
		Name:         mf.generateRandomMenuItem(restaurant.Cuisines, category),
		Description:  mf.fake.Lorem().Sentence(10),
		Price:        decimal.NewFromFloat(mf.fake.Float64(2, 3, 40)).Round(2),
		ImageURL:     mf.fake.Internet().URL(),
		Category:     category,
	}
	if category == "Main Courses" {
		item.Customizations = mf.generateCustomizations()
	}
	return item
}

// generateCustomizations gives main courses an optional required spice
// level and an extras group.
func (mf *MenuItemFactory) generateCustomizations() []models.CustomizationGroup {
	var groups []models.CustomizationGroup
	if mf.rng.Intn(2) == 0 {
		groups = append(groups, models.CustomizationGroup{
			ID: "spice", Title: "Spice Level", Mode: models.SelectionSingle, Required: true,
			Options: []models.CustomizationOption{
				{ID: "mild", Label: "Mild"},
				{ID: "medium", Label: "Medium"},
				{ID: "hot", Label: "Hot", PriceModifier: decimal.NewFromFloat(0.5)},
			},
		})
	}
	if mf.rng.Intn(3) > 0 {
		groups = append(groups, models.CustomizationGroup{
			ID: "extra", Title: "Extras", Mode: models.SelectionMulti,
			Options: []models.CustomizationOption{
				{ID: "cheese", Label: "Extra Cheese", PriceModifier: decimal.NewFromFloat(1)},
				{ID: "sauce", Label: "Extra Sauce", PriceModifier: decimal.NewFromFloat(0.5)},
				{ID: "small", Label: "Small Portion", PriceModifier: decimal.NewFromFloat(-2)},
			},
		})
	}
	return groups
}

func (mf *MenuItemFactory) generateRandomMenuItem(cuisines []string, category string) string {
	if names, ok := categoryItems[category]; ok {
		return names[mf.rng.Intn(len(names))]
	}
	if len(mf.dishes) > 0 {
		return mf.dishes[mf.rng.Intn(len(mf.dishes))].Name
	}
	items := map[string][]string{
		"Pizza":         {"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme"},
		"Curry":         {"Chicken Tikka Masala", "Vegetable Curry", "Beef Madras", "Paneer Butter Masala"},
		"Burgers":       {"Classic Cheeseburger", "Veggie Burger", "BBQ Bacon Burger", "Mushroom Swiss Burger"},
		"Grill":         {"Grilled Chicken", "BBQ Ribs", "Grilled Salmon", "Mixed Grill Platter"},
		"Salad":         {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
		"Italian":       {"Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Risotto ai Funghi"},
		"Indian":        {"Chicken Tikka Masala", "Vegetable Curry", "Biryani", "Dal Makhani"},
		"American":      {"Cheeseburger", "Hot Dog", "BBQ Ribs", "Mac and Cheese"},
		"Japanese":      {"Sushi Roll", "Ramen", "Tempura", "Teriyaki Chicken"},
		"Mexican":       {"Tacos", "Burrito", "Enchiladas", "Quesadilla"},
		"Chinese":       {"Kung Pao Chicken", "Fried Rice", "Dumplings", "Mapo Tofu"},
		"Thai":          {"Pad Thai", "Green Curry", "Tom Yum Soup", "Massaman Curry"},
		"Greek":         {"Gyros", "Souvlaki", "Moussaka", "Spanakopita"},
		"French":        {"Coq au Vin", "Beef Bourguignon", "Ratatouille", "Duck Confit"},
		"Mediterranean": {"Falafel Plate", "Shawarma", "Grilled Halloumi", "Lamb Kofta"},
		"Vegan":         {"Buddha Bowl", "Lentil Curry", "Tofu Stir Fry", "Vegan Burger"},
	}
	if len(cuisines) == 0 {
		return "Special of the Day"
	}
	cuisine := cuisines[mf.rng.Intn(len(cuisines))]
	if names, ok := items[cuisine]; ok {
		return names[mf.rng.Intn(len(names))]
	}
	return "Special of the Day"
}
