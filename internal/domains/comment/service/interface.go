package service

import (
	"context"

	"autores-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	ListByBook(ctx context.Context, bookID int64) ([]model.CommentResponse, error)
	Create(ctx context.Context, bookID int64, req model.CommentRequest) (*model.Comment, error)
	Update(ctx context.Context, bookID, commentID int64, req model.CommentRequest) error
}
