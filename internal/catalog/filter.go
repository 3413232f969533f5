package catalog

import (
	"strings"

	"github.com/chrisdamba/foodfleet/internal/models"
	"golang.org/x/text/cases"
)

// Filter keeps restaurants whose name or any cuisine tag contains the trimmed
// term, ignoring case. An empty term keeps everything. Input order is kept.
func Filter(restaurants []models.Restaurant, term string) []models.Restaurant {
	term = strings.TrimSpace(term)
	out := make([]models.Restaurant, 0, len(restaurants))
	if term == "" {
		return append(out, restaurants...)
	}

	fold := cases.Fold()
	needle := fold.String(term)
	for _, r := range restaurants {
		if strings.Contains(fold.String(r.Name), needle) || anyContains(fold, r.Cuisines, needle) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCuisine keeps restaurants tagged with the cuisine, compared without
// case. An empty cuisine keeps everything.
func FilterByCuisine(restaurants []models.Restaurant, cuisine string) []models.Restaurant {
	cuisine = strings.TrimSpace(cuisine)
	out := make([]models.Restaurant, 0, len(restaurants))
	if cuisine == "" {
		return append(out, restaurants...)
	}

	fold := cases.Fold()
	want := fold.String(cuisine)
	for _, r := range restaurants {
		for _, c := range r.Cuisines {
			if fold.String(c) == want {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func anyContains(fold cases.Caser, tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(fold.String(t), needle) {
			return true
		}
	}
	return false
}
