package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autores-backend/internal/domains/author/model"
)

type stubAuthorService struct {
	byID     map[int64]*model.AuthorDetailResponse
	byName   map[string][]model.AuthorDetailResponse
	created  *model.Author
	lastName string
}

func (s *stubAuthorService) List(ctx context.Context) ([]model.AuthorResponse, error) {
	return []model.AuthorResponse{}, nil
}

func (s *stubAuthorService) GetByID(ctx context.Context, id int64) (*model.AuthorDetailResponse, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

func (s *stubAuthorService) SearchByName(ctx context.Context, substring string) ([]model.AuthorDetailResponse, error) {
	s.lastName = substring
	matches := s.byName[substring]
	if len(matches) == 0 {
		return nil, model.ErrAuthorNotFound
	}
	return matches, nil
}

func (s *stubAuthorService) Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.created = &model.Author{ID: 7, Name: req.Name}
	return s.created, nil
}

func (s *stubAuthorService) Update(ctx context.Context, id int64, req model.AuthorRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, ok := s.byID[id]; !ok {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (s *stubAuthorService) Delete(ctx context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return model.ErrAuthorNotFound
	}
	return nil
}

func setupTestRouter(svc *stubAuthorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	router := gin.New()
	router.GET("/api/autor/:id", h.GetByIDOrName)
	router.POST("/api/autor", h.Create)
	router.PUT("/api/autor/:id", h.Update)
	router.DELETE("/api/autor/:id", h.Delete)
	return router
}

func TestGetByIDOrNameDispatch(t *testing.T) {
	svc := &stubAuthorService{
		byID: map[int64]*model.AuthorDetailResponse{
			5: {ID: 5, Name: "Jorge Luis Borges"},
		},
		byName: map[string][]model.AuthorDetailResponse{
			"Borges": {{ID: 5, Name: "Jorge Luis Borges"}},
		},
	}
	router := setupTestRouter(svc)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "numeric segment hits lookup by id", path: "/api/autor/5", wantStatus: http.StatusOK},
		{name: "unknown id", path: "/api/autor/99", wantStatus: http.StatusNotFound},
		{name: "text segment hits name search", path: "/api/autor/Borges", wantStatus: http.StatusOK},
		{name: "no matches is not found", path: "/api/autor/Cervantes", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateSetsLocationHeader(t *testing.T) {
	svc := &stubAuthorService{}
	router := setupTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/autor", strings.NewReader(`{"name":"Alfonsina Storni"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/autor/7", w.Header().Get("Location"))
}

func TestCreateValidationFailure(t *testing.T) {
	svc := &stubAuthorService{}
	router := setupTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/autor", strings.NewReader(`{"name":"alfonsina"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestUpdateAndDeleteReturnOK(t *testing.T) {
	svc := &stubAuthorService{
		byID: map[int64]*model.AuthorDetailResponse{
			3: {ID: 3, Name: "Adolfo Bioy Casares"},
		},
	}
	router := setupTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/autor/3", strings.NewReader(`{"name":"Adolfo Bioy"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/autor/3", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
