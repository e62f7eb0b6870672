package repository

import (
	"context"

	"autores-backend/internal/domains/comment/model"
)

type RepositoryInterface interface {
	ListByBook(ctx context.Context, bookID int64) ([]model.CommentResponse, error)
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
}
