package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"autores-backend/internal/domains/book/model"
	"autores-backend/internal/domains/book/service"
	"autores-backend/internal/shared/response"
)

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// List handles GET /api/libro.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		respondBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// GetByID handles GET /api/libro/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Create handles POST /api/libro.
func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.bookService.Create(c.Request.Context(), req)
	if err != nil {
		respondBookError(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("/api/libro/%d", created.ID), created)
}

// Update handles PUT /api/libro/:id.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.bookService.Update(c.Request.Context(), id, req); err != nil {
		respondBookError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Patch handles PATCH /api/libro/:id. An empty or missing document is
// rejected before the book is even loaded.
func (h *BookHandler) Patch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var doc model.PatchDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(doc) == 0 {
		response.BadRequest(c, "patch document is empty")
		return
	}

	if err := h.bookService.Patch(c.Request.Context(), id, doc); err != nil {
		respondBookError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/libro/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		respondBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// respondBookError maps service errors to HTTP statuses.
func respondBookError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fieldErrors)
		return
	}

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrUnknownAuthorID), errors.Is(err, model.ErrDuplicateAuthorID):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
