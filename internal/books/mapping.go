package books

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "books", "b").
	Project("id", "ID").
	Project("title", "Title").
	Project("author", "Author").
	Project("isbn", "ISBN").
	Project("description", "Description").
	Project("published_year", "PublishedYear").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Title"}

const returning = `RETURNING id, title, author, isbn, description, published_year, created_at, updated_at`

// Filters contains optional filtering criteria for book queries.
// Title and Author match substrings; PublishedYear matches exactly.
type Filters struct {
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	PublishedYear *int    `json:"published_year,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Title", f.Title).
		WhereContains("Author", f.Author).
		WhereEquals("PublishedYear", f.PublishedYear)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("title"); t != "" {
		f.Title = &t
	}

	if a := values.Get("author"); a != "" {
		f.Author = &a
	}

	if y := values.Get("published_year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil {
			f.PublishedYear = &v
		}
	}

	return f
}

func scanBook(s repository.Scanner) (Book, error) {
	var b Book
	err := s.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.Description,
		&b.PublishedYear,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}
