package client

import (
	"net/url"
	"strconv"
)

const defaultPageSize = 10

// ListOptions paginate and filter list calls. Page is 1-based; zero values
// fall back to the first page and the default page size. Search is omitted
// from the query string when empty.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

func (o ListOptions) query() url.Values {
	page, limit := o.Page, o.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	return q
}
