package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autores-backend/internal/domains/book/model"
)

type stubBookService struct {
	books    map[int64]*model.BookResponse
	lastDoc  model.PatchDocument
	patchErr error
}

func (s *stubBookService) List(ctx context.Context) ([]model.BookResponse, error) {
	return []model.BookResponse{}, nil
}

func (s *stubBookService) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return b, nil
}

func (s *stubBookService) Create(ctx context.Context, req model.BookRequest) (*model.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &model.BookResponse{ID: 9, Title: req.Title, PublicationDate: req.PublicationDate}, nil
}

func (s *stubBookService) Update(ctx context.Context, id int64, req model.BookRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, ok := s.books[id]; !ok {
		return model.ErrBookNotFound
	}
	return nil
}

func (s *stubBookService) Patch(ctx context.Context, id int64, doc model.PatchDocument) error {
	if _, ok := s.books[id]; !ok {
		return model.ErrBookNotFound
	}
	s.lastDoc = doc
	return s.patchErr
}

func (s *stubBookService) Delete(ctx context.Context, id int64) error {
	if _, ok := s.books[id]; !ok {
		return model.ErrBookNotFound
	}
	return nil
}

func setupTestRouter(svc *stubBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	router := gin.New()
	router.POST("/api/libro", h.Create)
	router.GET("/api/libro/:id", h.GetByID)
	router.PUT("/api/libro/:id", h.Update)
	router.PATCH("/api/libro/:id", h.Patch)
	router.DELETE("/api/libro/:id", h.Delete)
	return router
}

func existingBook() map[int64]*model.BookResponse {
	return map[int64]*model.BookResponse{
		1: {
			ID:              1,
			Title:           "Ficciones",
			PublicationDate: time.Date(1944, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestBookCreateSetsLocationHeader(t *testing.T) {
	router := setupTestRouter(&stubBookService{})

	body := `{"title":"Ficciones","publicationDate":"1944-01-01T00:00:00Z","authorIds":[1]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/libro", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/libro/9", w.Header().Get("Location"))
}

func TestBookUpdateReturnsNoContent(t *testing.T) {
	router := setupTestRouter(&stubBookService{books: existingBook()})

	body := `{"title":"Ficciones","publicationDate":"1944-01-01T00:00:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/libro/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBookPatchReturnsNoContent(t *testing.T) {
	svc := &stubBookService{books: existingBook()}
	router := setupTestRouter(svc)

	body := `[{"op":"replace","path":"/title","value":"El Aleph"}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/libro/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.lastDoc, 1)
	assert.Equal(t, model.OpReplace, svc.lastDoc[0].Op)
}

func TestBookPatchRejectsEmptyDocument(t *testing.T) {
	router := setupTestRouter(&stubBookService{books: existingBook()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/libro/1", strings.NewReader(`[]`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookGetUnknownIsNotFound(t *testing.T) {
	router := setupTestRouter(&stubBookService{books: existingBook()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/libro/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookDeleteReturnsOK(t *testing.T) {
	router := setupTestRouter(&stubBookService{books: existingBook()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/libro/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
