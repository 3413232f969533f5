package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/chrisdamba/foodfleet/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a sorted copy. Every key sorts stably so equal entries keep
// their input order. An unknown key leaves the order unchanged.
func Sort(restaurants []models.Restaurant, key models.SortKey, locale string) []models.Restaurant {
	out := append([]models.Restaurant(nil), restaurants...)

	switch key {
	case models.SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case models.SortDeliveryTimeAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return DeliveryLowerBound(out[i].DeliveryTimeEstimate) < DeliveryLowerBound(out[j].DeliveryTimeEstimate)
		})
	case models.SortNameAsc:
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.English
		}
		c := collate.New(tag)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// DeliveryLowerBound parses the leading integer of a range such as
// "20-30 min". Strings without one yield math.MaxInt so they sort last.
func DeliveryLowerBound(estimate string) int {
	s := strings.TrimLeftFunc(estimate, unicode.IsSpace)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.MaxInt
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return math.MaxInt
	}
	return n
}
