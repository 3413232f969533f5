package factories

import (
	"fmt"
	"math/rand"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var allCuisines = []string{"Italian", "Cafe", "Indian", "American", "European", "Japanese", "Mexican", "Caribbean", "Contemporary", "Chinese", "Thai", "Vietnamese", "Greek", "French", "Mediterranean", "Moroccan", "Fast Food", "Street Food", "Pizza", "Burgers", "Curry", "Salad", "Grill", "Desserts", "Vegan"}

type RestaurantFactory struct {
	fake faker.Faker
	rng  *rand.Rand
}

// NewRestaurantFactory returns a factory whose output is reproducible for a
// given seed.
func NewRestaurantFactory(seed int64) *RestaurantFactory {
	return &RestaurantFactory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed + 1)),
	}
}

func (rf *RestaurantFactory) CreateRestaurant() models.Restaurant {
	low := 10 + 5*rf.rng.Intn(7) // 10 to 40 minutes
	high := low + 5*(rf.rng.Intn(3)+1)

	return models.Restaurant{
		ID:                   cuid.New(),
		Name:                 rf.fake.Company().Name(),
		Cuisines:             rf.generateRandomCuisines(),
		Rating:               rf.fake.Float64(1, 1, 5),
		DeliveryTimeEstimate: fmt.Sprintf("%d-%d min", low, high),
		ImageURL:             rf.fake.Internet().URL(),
	}
}

func (rf *RestaurantFactory) CreateRestaurants(n int) []models.Restaurant {
	out := make([]models.Restaurant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rf.CreateRestaurant())
	}
	return out
}

// generateRandomCuisines picks one to three distinct tags.
func (rf *RestaurantFactory) generateRandomCuisines() []string {
	count := rf.rng.Intn(3) + 1
	picked := rf.rng.Perm(len(allCuisines))[:count]
	cuisines := make([]string, count)
	for i, idx := range picked {
		cuisines[i] = allCuisines[idx]
	}
	return cuisines
}
