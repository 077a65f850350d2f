package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"midnightsoldiers-backend/internal/shared/response"
	"midnightsoldiers-backend/pkg/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		h.handleLoginError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout handles POST /auth/logout. Tokens are stateless, so this is an
// acknowledgement the client uses to drop its session flag.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) handleLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.ErrorResponse(c, http.StatusUnauthorized, "AUTH_USER_NOT_FOUND",
			"No admin account found with this username.")
	case errors.Is(err, ErrWrongPassword):
		response.ErrorResponse(c, http.StatusUnauthorized, "AUTH_WRONG_PASSWORD",
			"Incorrect password.")
	case errors.Is(err, ErrInvalidEmail):
		response.ErrorResponse(c, http.StatusBadRequest, "AUTH_INVALID_EMAIL",
			"Invalid username format.")
	case errors.Is(err, ErrTooManyRequests):
		response.ErrorResponse(c, http.StatusTooManyRequests, "AUTH_TOO_MANY_REQUESTS",
			"Too many failed attempts. Please try again later.")
	case errors.Is(err, ErrMisconfigured):
		response.ErrorResponse(c, http.StatusInternalServerError, "AUTH_NOT_CONFIGURED",
			"Authentication service is not properly configured. Please contact the administrator.")
	default:
		logger.Error("login failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "AUTH_FAILED",
			"Login failed. Please try again.")
	}
}
