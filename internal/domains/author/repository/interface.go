package repository

import (
	"context"

	"autores-backend/internal/domains/author/model"
)

// RepositoryInterface is the author data-access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.AuthorDetailResponse, error)
	GetAll(ctx context.Context) ([]model.AuthorResponse, error)
	SearchByName(ctx context.Context, substring string) ([]model.AuthorDetailResponse, error)
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FilterExisting returns which of the given ids name an existing
	// author. Used by the book domain to validate authorship lists.
	FilterExisting(ctx context.Context, ids []int64) (map[int64]struct{}, error)
}
