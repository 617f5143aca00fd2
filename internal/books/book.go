// Package books implements a small book catalog with unique ISBNs.
package books

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalogued book.
type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	Description   string    `json:"description"`
	PublishedYear *int      `json:"published_year"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to catalogue a book.
type CreateCommand struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	ISBN          string `json:"isbn" validate:"required"`
	Description   string `json:"description"`
	PublishedYear *int   `json:"published_year" validate:"omitempty,gte=0"`
}

// UpdateCommand overwrites only the fields that are present.
type UpdateCommand struct {
	Title         *string `json:"title" validate:"omitempty,min=1"`
	Author        *string `json:"author" validate:"omitempty,min=1"`
	ISBN          *string `json:"isbn" validate:"omitempty,min=1"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"published_year" validate:"omitempty,gte=0"`
}

func (cmd UpdateCommand) apply(b *Book) {
	if cmd.Title != nil {
		b.Title = *cmd.Title
	}
	if cmd.Author != nil {
		b.Author = *cmd.Author
	}
	if cmd.ISBN != nil {
		b.ISBN = *cmd.ISBN
	}
	if cmd.Description != nil {
		b.Description = *cmd.Description
	}
	if cmd.PublishedYear != nil {
		b.PublishedYear = cmd.PublishedYear
	}
}
