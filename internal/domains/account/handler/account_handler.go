package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"autores-backend/internal/domains/account/model"
	"autores-backend/internal/domains/account/service"
	"autores-backend/internal/shared/response"
)

type AccountHandler struct {
	accountService service.ServiceInterface
}

func NewAccountHandler(accountService service.ServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register handles POST /api/cuenta/registro.
func (h *AccountHandler) Register(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	auth, err := h.accountService.Register(c.Request.Context(), creds)
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// Login handles POST /api/cuenta/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	auth, err := h.accountService.Login(c.Request.Context(), creds)
	if err != nil {
		respondAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// respondAccountError maps service errors to HTTP statuses.
func respondAccountError(c *gin.Context, err error) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fieldErrors)
		return
	}

	switch {
	case errors.Is(err, model.ErrEmailAlreadyExists):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
