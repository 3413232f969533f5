package catalog

import "github.com/chrisdamba/foodfleet/internal/models"

// Query fully determines a displayed page. Changing the search term, sort key
// or cuisine starts again from page 1; changing the page keeps the rest.
type Query struct {
	Search  string
	Sort    models.SortKey
	Cuisine string
	Page    int
}

func NewQuery() Query {
	return Query{Sort: models.DefaultSortKey, Page: 1}
}

func (q Query) WithSearch(term string) Query {
	q.Search = term
	q.Page = 1
	return q
}

func (q Query) WithSort(key models.SortKey) Query {
	q.Sort = key
	q.Page = 1
	return q
}

func (q Query) WithCuisine(cuisine string) Query {
	q.Cuisine = cuisine
	q.Page = 1
	return q
}

func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}
