package service

import (
	"context"

	"autores-backend/internal/domains/book/model"
)

type ServiceInterface interface {
	List(ctx context.Context) ([]model.BookResponse, error)
	GetByID(ctx context.Context, id int64) (*model.BookResponse, error)
	Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error)
	Update(ctx context.Context, id int64, req model.BookRequest) error
	Patch(ctx context.Context, id int64, doc model.PatchDocument) error
	Delete(ctx context.Context, id int64) error
}
