package service

import (
	"context"

	"autores-backend/internal/domains/author/model"
)

// ServiceInterface is the author business-logic contract.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.AuthorResponse, error)
	GetByID(ctx context.Context, id int64) (*model.AuthorDetailResponse, error)
	SearchByName(ctx context.Context, substring string) ([]model.AuthorDetailResponse, error)
	Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id int64, req model.AuthorRequest) error
	Delete(ctx context.Context, id int64) error
}
