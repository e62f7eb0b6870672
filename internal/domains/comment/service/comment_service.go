package service

import (
	"context"
	"fmt"

	bookmodel "autores-backend/internal/domains/book/model"
	bookrepo "autores-backend/internal/domains/book/repository"
	"autores-backend/internal/domains/comment/model"
	"autores-backend/internal/domains/comment/repository"
)

type commentService struct {
	repo     repository.RepositoryInterface
	bookRepo bookrepo.RepositoryInterface
}

// NewCommentService creates the comment service. Every operation is scoped
// to a book, so the book repository is injected to reject routes that name
// a book that does not exist.
func NewCommentService(repo repository.RepositoryInterface, bookRepo bookrepo.RepositoryInterface) ServiceInterface {
	return &commentService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *commentService) ListByBook(ctx context.Context, bookID int64) ([]model.CommentResponse, error) {
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, err
	}

	return s.repo.ListByBook(ctx, bookID)
}

func (s *commentService) Create(ctx context.Context, bookID int64, req model.CommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Comment{
		Content: req.Content,
		BookID:  bookID,
	})
}

func (s *commentService) Update(ctx context.Context, bookID, commentID int64, req model.CommentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.requireBook(ctx, bookID); err != nil {
		return err
	}

	return s.repo.Update(ctx, &model.Comment{
		ID:      commentID,
		Content: req.Content,
		BookID:  bookID,
	})
}

func (s *commentService) requireBook(ctx context.Context, bookID int64) error {
	exists, err := s.bookRepo.ExistsByID(ctx, bookID)
	if err != nil {
		return fmt.Errorf("failed to check book existence: %w", err)
	}
	if !exists {
		return bookmodel.ErrBookNotFound
	}
	return nil
}
