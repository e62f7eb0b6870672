package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	sharedvalidation "autores-backend/internal/shared/validation"
)

// Author is the domain entity, mapped 1:1 to the authors table.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// AuthorRequest is the payload for create and full update.
type AuthorRequest struct {
	Name string `json:"name"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 120),
			sharedvalidation.FirstLetterUppercase,
		),
	)
}

// BookSummary is the shallow book projection used in author views; it
// deliberately carries no author list so the payload cannot recurse.
type BookSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// AuthorResponse is the list view: the author plus their books.
type AuthorResponse struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Books []BookSummary `json:"books"`
}

// AuthorRef identifies a co-author inside a nested book.
type AuthorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NestedBook is a book inside an author detail view, carrying the book's
// complete author list sorted by link position.
type NestedBook struct {
	ID      int64       `json:"id"`
	Title   string      `json:"title"`
	Authors []AuthorRef `json:"authors"`
}

// AuthorDetailResponse is the get-by-id and search-by-name view.
type AuthorDetailResponse struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Books []NestedBook `json:"books"`
}
