package repository

import (
	"context"

	"autores-backend/internal/domains/book/model"
)

// RepositoryInterface defines book data access. Create and Update persist
// the book row and its authorship links in a single transaction.
type RepositoryInterface interface {
	GetAll(ctx context.Context) ([]model.BookResponse, error)
	GetByID(ctx context.Context, id int64) (*model.BookResponse, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, book *model.Book, links []model.AuthorLink) (*model.Book, error)
	Update(ctx context.Context, book *model.Book, links []model.AuthorLink) error
	Delete(ctx context.Context, id int64) error
}
