package service

import (
	"context"
	"fmt"

	"autores-backend/internal/domains/author/model"
	"autores-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates the author service with its repository injected.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) List(ctx context.Context) ([]model.AuthorResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.AuthorDetailResponse, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchByName matches case-sensitive substrings over author names. Zero
// matches is reported as not-found; that is the documented contract of
// this endpoint, not an accident.
func (s *authorService) SearchByName(ctx context.Context, substring string) ([]model.AuthorDetailResponse, error) {
	authors, err := s.repo.SearchByName(ctx, substring)
	if err != nil {
		return nil, err
	}

	if len(authors) == 0 {
		return nil, model.ErrAuthorNotFound
	}

	return authors, nil
}

func (s *authorService) Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Author{Name: req.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

// Update fully replaces the author's mutable fields; fields omitted in the
// request are not preserved.
func (s *authorService) Update(ctx context.Context, id int64, req model.AuthorRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return model.ErrAuthorNotFound
	}

	return s.repo.Update(ctx, &model.Author{ID: id, Name: req.Name})
}

// Delete is an existence pre-check followed by a delete. The two steps are
// not atomic; a concurrent delete may win the race, in which case the
// repository reports not-found.
func (s *authorService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check author existence: %w", err)
	}
	if !exists {
		return model.ErrAuthorNotFound
	}

	return s.repo.Delete(ctx, id)
}
