package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"autores-backend/internal/domains/author/model"
	"autores-backend/internal/domains/author/service"
	"autores-backend/internal/shared/response"
)

type AuthorHandler struct {
	authorService service.ServiceInterface
}

func NewAuthorHandler(authorService service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
	}
}

// List handles GET /api/autor (bearer auth enforced by the router).
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorService.List(c.Request.Context())
	if err != nil {
		respondAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// GetByIDOrName handles GET /api/autor/:id. A numeric segment is a lookup
// by id; anything else is a substring search over names. The router cannot
// hold two wildcards at the same position, so the split happens here.
func (h *AuthorHandler) GetByIDOrName(c *gin.Context) {
	segment := c.Param("id")

	if id, err := strconv.ParseInt(segment, 10, 64); err == nil {
		author, err := h.authorService.GetByID(c.Request.Context(), id)
		if err != nil {
			respondAuthorError(c, err)
			return
		}
		response.Success(c, http.StatusOK, author)
		return
	}

	authors, err := h.authorService.SearchByName(c.Request.Context(), segment)
	if err != nil {
		respondAuthorError(c, err)
		return
	}
	response.Success(c, http.StatusOK, authors)
}

// Create handles POST /api/autor.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.authorService.Create(c.Request.Context(), req)
	if err != nil {
		respondAuthorError(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("/api/autor/%d", created.ID), created)
}

// Update handles PUT /api/autor/:id.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.authorService.Update(c.Request.Context(), id, req); err != nil {
		respondAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// Delete handles DELETE /api/autor/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid author id")
		return
	}

	if err := h.authorService.Delete(c.Request.Context(), id); err != nil {
		respondAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// respondAuthorError maps service errors to HTTP statuses.
func respondAuthorError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fieldErrors)
		return
	}

	if errors.Is(err, model.ErrAuthorNotFound) {
		response.NotFound(c, err.Error())
		return
	}

	response.InternalServerError(c, "internal server error")
}
