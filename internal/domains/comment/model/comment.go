package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to exactly one book. Comments are anonymous; no author
// is recorded.
type Comment struct {
	ID      int64  `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
	BookID  int64  `json:"bookId" db:"book_id"`
}

// CommentRequest is the payload for create and full update.
type CommentRequest struct {
	Content string `json:"content"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

// CommentResponse omits the book id; the book is already fixed by the
// route the comment was fetched through.
type CommentResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}
