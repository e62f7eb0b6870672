package service

import (
	"context"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autores-backend/internal/domains/author/model"
)

type fakeAuthorRepository struct {
	authors map[int64]*model.Author
	nextID  int64
}

func newFakeAuthorRepository() *fakeAuthorRepository {
	return &fakeAuthorRepository{
		authors: make(map[int64]*model.Author),
		nextID:  1,
	}
}

func (f *fakeAuthorRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := &model.Author{ID: f.nextID, Name: a.Name}
	f.authors[created.ID] = created
	f.nextID++
	return created, nil
}

func (f *fakeAuthorRepository) GetByID(ctx context.Context, id int64) (*model.AuthorDetailResponse, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &model.AuthorDetailResponse{ID: a.ID, Name: a.Name, Books: []model.NestedBook{}}, nil
}

func (f *fakeAuthorRepository) GetAll(ctx context.Context) ([]model.AuthorResponse, error) {
	out := make([]model.AuthorResponse, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, model.AuthorResponse{ID: a.ID, Name: a.Name, Books: []model.BookSummary{}})
	}
	return out, nil
}

func (f *fakeAuthorRepository) SearchByName(ctx context.Context, substring string) ([]model.AuthorDetailResponse, error) {
	out := make([]model.AuthorDetailResponse, 0)
	for _, a := range f.authors {
		if strings.Contains(a.Name, substring) {
			out = append(out, model.AuthorDetailResponse{ID: a.ID, Name: a.Name, Books: []model.NestedBook{}})
		}
	}
	return out, nil
}

func (f *fakeAuthorRepository) Update(ctx context.Context, a *model.Author) error {
	if _, ok := f.authors[a.ID]; !ok {
		return model.ErrAuthorNotFound
	}
	f.authors[a.ID] = &model.Author{ID: a.ID, Name: a.Name}
	return nil
}

func (f *fakeAuthorRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func (f *fakeAuthorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.authors[id]
	return ok, nil
}

func (f *fakeAuthorRepository) FilterExisting(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	out := make(map[int64]struct{})
	for _, id := range ids {
		if _, ok := f.authors[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func TestAuthorServiceCreate(t *testing.T) {
	tests := []struct {
		name    string
		request model.AuthorRequest
		wantErr bool
	}{
		{name: "valid name", request: model.AuthorRequest{Name: "Gabriel García Márquez"}},
		{name: "lowercase first letter", request: model.AuthorRequest{Name: "gabriel"}, wantErr: true},
		{name: "empty name", request: model.AuthorRequest{Name: ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthorService(newFakeAuthorRepository())
			created, err := svc.Create(context.Background(), tt.request)

			if tt.wantErr {
				var fieldErrors validation.Errors
				require.ErrorAs(t, err, &fieldErrors)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.Equal(t, tt.request.Name, created.Name)
		})
	}
}

func TestAuthorServiceSearchByNameZeroMatchesIsNotFound(t *testing.T) {
	repo := newFakeAuthorRepository()
	_, err := repo.Create(context.Background(), &model.Author{Name: "Julio Cortázar"})
	require.NoError(t, err)

	svc := NewAuthorService(repo)

	matches, err := svc.SearchByName(context.Background(), "Cort")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	_, err = svc.SearchByName(context.Background(), "Borges")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorServiceUpdateUnknownAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepository())

	err := svc.Update(context.Background(), 42, model.AuthorRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorServiceDelete(t *testing.T) {
	repo := newFakeAuthorRepository()
	created, err := repo.Create(context.Background(), &model.Author{Name: "Silvina Ocampo"})
	require.NoError(t, err)

	svc := NewAuthorService(repo)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), model.ErrAuthorNotFound)
}
