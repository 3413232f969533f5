package catalog

import "github.com/chrisdamba/foodfleet/internal/models"

const maxVisiblePages = 5

// Page is one slice of a result set. TotalPages is zero when there are no
// results, in which case Page is 1 and Items is empty.
type Page struct {
	Items      []models.Restaurant
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
}

func (p Page) Empty() bool   { return p.TotalItems == 0 }
func (p Page) HasPrev() bool { return p.Page > 1 }
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// Paginate clamps page into [1, TotalPages] and slices out that page. A
// non-positive size falls back to the default page size.
func Paginate(restaurants []models.Restaurant, page, size int) Page {
	if size <= 0 {
		size = models.DefaultPageSize
	}
	total := len(restaurants)
	totalPages := (total + size - 1) / size

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      append([]models.Restaurant{}, restaurants[start:end]...),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// PageMarker is one entry of a pagination control: a page number or a gap.
type PageMarker struct {
	Number   int
	Current  bool
	Ellipsis bool
}

// PageWindow lays out the pagination control. Up to five pages are listed
// in full; beyond that the first and last pages are always shown around the
// current page's neighbours, with gaps marked by ellipses.
func PageWindow(current, totalPages int) []PageMarker {
	if totalPages <= 0 {
		return nil
	}
	number := func(n int) PageMarker { return PageMarker{Number: n, Current: n == current} }

	var markers []PageMarker
	if totalPages <= maxVisiblePages {
		for i := 1; i <= totalPages; i++ {
			markers = append(markers, number(i))
		}
		return markers
	}

	start := max(2, current-1)
	end := min(totalPages-1, current+1)
	if current <= 3 {
		end = min(totalPages-1, maxVisiblePages-2)
	} else if current >= totalPages-2 {
		start = max(2, totalPages-maxVisiblePages+3)
	}

	markers = append(markers, number(1))
	if start > 2 {
		markers = append(markers, PageMarker{Ellipsis: true})
	}
	for i := start; i <= end; i++ {
		markers = append(markers, number(i))
	}
	if end < totalPages-1 {
		markers = append(markers, PageMarker{Ellipsis: true})
	}
	return append(markers, number(totalPages))
}
