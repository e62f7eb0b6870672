package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	authorrepo "autores-backend/internal/domains/author/repository"
	"autores-backend/internal/domains/book/model"
	"autores-backend/internal/domains/book/repository"
)

type bookService struct {
	repo       repository.RepositoryInterface
	authorRepo authorrepo.RepositoryInterface
}

// NewBookService creates the book service. The author repository is
// injected so authorship lists can be validated against existing authors
// before any write is attempted.
func NewBookService(repo repository.RepositoryInterface, authorRepo authorrepo.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *bookService) List(ctx context.Context) ([]model.BookResponse, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateAuthorIDs(ctx, req.AuthorIDs); err != nil {
		return nil, err
	}

	book := &model.Book{
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
	}
	created, err := s.repo.Create(ctx, book, buildAuthorLinks(req.AuthorIDs))
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, created.ID)
}

// Update fully replaces the book: title, publication date and the entire
// authorship list, including its order.
func (s *bookService) Update(ctx context.Context, id int64, req model.BookRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.validateAuthorIDs(ctx, req.AuthorIDs); err != nil {
		return err
	}

	book := &model.Book{
		ID:              id,
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
	}
	return s.repo.Update(ctx, book, buildAuthorLinks(req.AuthorIDs))
}

// Patch loads the book, applies the document to its patchable
// representation, validates the merged result and persists it as a full
// replace. A failing operation leaves the stored book untouched.
func (s *bookService) Patch(ctx context.Context, id int64, doc model.PatchDocument) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	patch := model.NewBookPatch(current)
	if err := patch.Apply(doc); err != nil {
		return err
	}
	if err := patch.Validate(); err != nil {
		return err
	}
	if err := s.validateAuthorIDs(ctx, patch.AuthorIDs); err != nil {
		return err
	}

	book := &model.Book{
		ID:              id,
		Title:           patch.Title,
		PublicationDate: patch.PublicationDate,
	}
	return s.repo.Update(ctx, book, buildAuthorLinks(patch.AuthorIDs))
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validateAuthorIDs checks every referenced author exists. An empty list is
// valid; a book may have no authors.
func (s *bookService) validateAuthorIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.authorRepo.FilterExisting(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to verify author ids: %w", err)
	}

	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return validation.Errors{
				"authorIds": fmt.Errorf("author id %d does not exist", id),
			}
		}
	}

	return nil
}

// buildAuthorLinks assigns positions by input index, so the order the
// caller listed the authors in is the order they are stored and served in.
func buildAuthorLinks(ids []int64) []model.AuthorLink {
	links := make([]model.AuthorLink, 0, len(ids))
	for i, id := range ids {
		links = append(links, model.AuthorLink{
			AuthorID: id,
			Position: i,
		})
	}
	return links
}
