package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	bookmodel "autores-backend/internal/domains/book/model"
	"autores-backend/internal/domains/comment/model"
	"autores-backend/internal/domains/comment/service"
	"autores-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// List handles GET /api/libro/:id/comentario.
func (h *CommentHandler) List(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	comments, err := h.commentService.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Create handles POST /api/libro/:id/comentario.
func (h *CommentHandler) Create(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.commentService.Create(c.Request.Context(), bookID, req)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	location := fmt.Sprintf("/api/libro/%d/comentario/%d", bookID, created.ID)
	response.Created(c, location, model.CommentResponse{ID: created.ID, Content: created.Content})
}

// Update handles PUT /api/libro/:id/comentario/:commentId.
func (h *CommentHandler) Update(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.commentService.Update(c.Request.Context(), bookID, commentID, req); err != nil {
		respondCommentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondCommentError maps service errors to HTTP statuses.
func respondCommentError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fieldErrors)
		return
	}

	switch {
	case errors.Is(err, bookmodel.ErrBookNotFound), errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
