package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	sharedvalidation "autores-backend/internal/shared/validation"
)

// Book is the domain entity, mapped 1:1 to the books table.
type Book struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationDate time.Time `json:"publicationDate" db:"publication_date"`
}

// AuthorLink is one row of the book_authors join table. Position is the
// zero-based index of the author in the list supplied by the caller; for a
// given book the positions are dense from 0.
type AuthorLink struct {
	AuthorID int64 `json:"authorId" db:"author_id"`
	BookID   int64 `json:"bookId" db:"book_id"`
	Position int   `json:"position" db:"position"`
}

// BookRequest is the payload for create and full update. AuthorIDs is
// taken exactly as supplied: order is preserved and duplicates are not
// collapsed.
type BookRequest struct {
	Title           string    `json:"title"`
	PublicationDate time.Time `json:"publicationDate"`
	AuthorIDs       []int64   `json:"authorIds"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 250),
			sharedvalidation.FirstLetterUppercase,
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("publication date is required"),
		),
	)
}

// AuthorRef is an author inside a book view, in link-position order.
type AuthorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CommentRef is a comment inside a book view.
type CommentRef struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// BookResponse is the full book view: comments plus the author list
// sorted ascending by link position.
type BookResponse struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	PublicationDate time.Time    `json:"publicationDate"`
	Authors         []AuthorRef  `json:"authors"`
	Comments        []CommentRef `json:"comments"`
}

// AuthorIDs projects the ordered author list back into the id list that
// produced it.
func (b *BookResponse) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(b.Authors))
	for _, a := range b.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}
