package catalog

import (
	"strings"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/shopspring/decimal"
)

const unsplash = "https://images.unsplash.com/photo-"

// SeedFavorites are the restaurant ids a fresh session starts with as favorites.
var SeedFavorites = []string{"2", "5"}

// SeedRestaurants returns the placeholder listing catalog.
func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "1", Name: "Italiano Delight", Cuisines: []string{"Italian", "Pizza", "Pasta"}, Rating: 4.5, DeliveryTimeEstimate: "25-35 min", ImageURL: unsplash + "1555396273-367ea4eb4db5?w=400"},
		{ID: "2", Name: "Sushi Central", Cuisines: []string{"Japanese", "Sushi", "Asian"}, Rating: 4.8, DeliveryTimeEstimate: "30-40 min", ImageURL: unsplash + "1579871494447-9811cf80d66c?w=400"},
		{ID: "3", Name: "Burger Barn", Cuisines: []string{"American", "Burgers", "Fries"}, Rating: 4.2, DeliveryTimeEstimate: "20-30 min", ImageURL: unsplash + "1568901346375-23c9450c58cd?w=400"},
		{ID: "4", Name: "Taco Fiesta", Cuisines: []string{"Mexican", "Tacos", "Burritos"}, Rating: 4.6, DeliveryTimeEstimate: "20-30 min", ImageURL: unsplash + "1565299715199-866c917206bb?w=400"},
		{ID: "5", Name: "Curry House", Cuisines: []string{"Indian", "Curry", "Spicy"}, Rating: 4.7, DeliveryTimeEstimate: "35-45 min", ImageURL: unsplash + "1585937421612-70a008356fbe?w=400"},
		{ID: "6", Name: "Vegan Vibes", Cuisines: []string{"Vegan", "Healthy", "Salads"}, Rating: 4.4, DeliveryTimeEstimate: "25-35 min", ImageURL: unsplash + "1512621776951-a57141f2eefd?w=400"},
		{ID: "7", Name: "Seafood Shack", Cuisines: []string{"Seafood", "Fish", "Coastal"}, Rating: 4.3, DeliveryTimeEstimate: "30-40 min", ImageURL: unsplash + "1574969901107-d4153c978094?w=400"},
		{ID: "8", Name: "Breakfast Nook", Cuisines: []string{"Breakfast", "Brunch", "Coffee"}, Rating: 4.9, DeliveryTimeEstimate: "15-25 min", ImageURL: unsplash + "1484723091739-30a097e8f929?w=400"},
		{ID: "9", Name: "Desert Delights", Cuisines: []string{"Desserts", "Cakes", "Ice Cream"}, Rating: 4.7, DeliveryTimeEstimate: "15-20 min", ImageURL: unsplash + "1551024601-bec78aea704b?w=400"},
		{ID: "10", Name: "Pizza Planet", Cuisines: []string{"Pizza", "Italian", "Fast Food"}, Rating: 4.1, DeliveryTimeEstimate: "25-35 min", ImageURL: unsplash + "1593504049359-69a9902a9299?w=400"},
	}
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func commonCustomizations() []models.CustomizationGroup {
	return []models.CustomizationGroup{
		{
			ID: "spice", Title: "Spice Level", Mode: models.SelectionSingle, Required: true,
			Options: []models.CustomizationOption{
				{ID: "mild", Label: "Mild"},
				{ID: "medium", Label: "Medium"},
				{ID: "hot", Label: "Hot"},
			},
		},
		{
			ID: "extra", Title: "Extras", Mode: models.SelectionMulti,
			Options: []models.CustomizationOption{
				{ID: "cheese", Label: "Extra Cheese", PriceModifier: price("1.00")},
				{ID: "sauce", Label: "Extra Sauce", PriceModifier: price("0.50")},
			},
		},
	}
}

func seedCategories() []models.MenuCategory {
	return []models.MenuCategory{
		{ID: "cat1", Name: "Appetizers", Items: []models.MenuItem{
			{ID: "item101", Name: "Bruschetta Trio", Description: "Tomato & basil, mushroom & truffle, olive tapenade.", Price: price("12.50"), ImageURL: unsplash + "1505253716362-afaea1d3d1af?w=400"},
			{ID: "item102", Name: "Crispy Calamari", Description: "Served with a zesty lemon aioli.", Price: price("14.00"), ImageURL: unsplash + "1600395098059-228150fca62f?w=400",
				Customizations: []models.CustomizationGroup{{
					ID: "dip", Title: "Dip Choice", Mode: models.SelectionSingle,
					Options: []models.CustomizationOption{
						{ID: "aioli", Label: "Lemon Aioli"},
						{ID: "marinara", Label: "Spicy Marinara"},
					},
				}},
			},
		}},
		{ID: "cat2", Name: "Main Courses", Items: []models.MenuItem{
			{ID: "item201", Name: "Grilled Salmon", Description: "With asparagus and hollandaise sauce.", Price: price("28.00"), ImageURL: unsplash + "1467003909585-2f8a72700288?w=400", Customizations: commonCustomizations()},
			{ID: "item202", Name: "Filet Mignon", Description: "8oz prime cut, served with potato gratin.", Price: price("35.00"), ImageURL: unsplash + "1600891964091-bab69b547603?w=400", Customizations: commonCustomizations()},
			{ID: "item203", Name: "Risotto ai Funghi", Description: "Creamy mushroom risotto with parmesan.", Price: price("22.00"), ImageURL: unsplash + "1598866774053-6b73d0993e08?w=400"},
		}},
		{ID: "cat3", Name: "Desserts", Items: []models.MenuItem{
			{ID: "item301", Name: "Chocolate Lava Cake", Description: "Warm molten chocolate cake with vanilla ice cream.", Price: price("10.00"), ImageURL: unsplash + "1587314168485-3236d6710814?w=400"},
			{ID: "item302", Name: "Tiramisu", Description: "Classic Italian coffee-flavored dessert.", Price: price("9.50"), ImageURL: unsplash + "1571877275904-8d3403577899?w=400"},
		}},
		{ID: "cat4", Name: "Drinks", Items: []models.MenuItem{
			{ID: "item401", Name: "Fresh Lemonade", Description: "House-made, refreshing.", Price: price("4.00"), ImageURL: unsplash + "1575596511433-d7572a5d5021?w=400"},
			{ID: "item402", Name: "Sparkling Water", Description: "Perrier or San Pellegrino.", Price: price("3.50"), ImageURL: unsplash + "1607685652808-04ad2f0f151a?w=400"},
		}},
	}
}

// SeedMenus returns the placeholder menus keyed by restaurant id. Restaurant
// "1" carries its own detail record; every other listed restaurant shares the
// same dishes under its listing details.
func SeedMenus() map[string]models.RestaurantMenu {
	menus := make(map[string]models.RestaurantMenu)
	for _, r := range SeedRestaurants() {
		menu := models.RestaurantMenu{
			Restaurant:   r,
			Address:      "123 Culinary Ave, Foodie City, FC 12345",
			Cuisine:      strings.Join(r.Cuisines, ", "),
			Description:  "Freshly prepared " + strings.ToLower(strings.Join(r.Cuisines, ", ")) + " dishes.",
			OpeningHours: "10:00 AM - 11:00 PM",
			Categories:   seedCategories(),
		}
		if r.ID == "1" {
			menu.Restaurant.Name = "The Gourmet Kitchen"
			menu.Restaurant.Rating = 4.8
			menu.Restaurant.ImageURL = unsplash + "1555939594-58d7cb561ad1?w=1200"
			menu.ReviewsCount = 520
			menu.Cuisine = "Modern European"
			menu.Description = "Experience exquisite Modern European cuisine crafted with passion and the freshest local ingredients. Perfect for any occasion."
		}
		for ci := range menu.Categories {
			for ii := range menu.Categories[ci].Items {
				menu.Categories[ci].Items[ii].RestaurantID = r.ID
				menu.Categories[ci].Items[ii].Category = menu.Categories[ci].Name
			}
		}
		menus[r.ID] = menu
	}
	return menus
}
