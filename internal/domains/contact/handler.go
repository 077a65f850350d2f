package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"midnightsoldiers-backend/internal/infrastructure/database"
	"midnightsoldiers-backend/internal/shared/response"
	"midnightsoldiers-backend/pkg/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /contact.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", fieldErrs)
			return
		}
		logger.Error("failed to save contact message", err)
		response.InternalServerError(c, "Failed to send message. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /admin/contact-forms.
func (h *Handler) List(c *gin.Context) {
	msgs, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list contact messages", err)
		response.InternalServerError(c, "Failed to load messages")
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

// MarkRead handles PATCH /admin/contact-forms/:id/read.
func (h *Handler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, database.ErrDocumentNotFound) {
			response.NotFound(c, "Message not found")
			return
		}
		logger.Error("failed to mark contact message read", err)
		response.InternalServerError(c, "Failed to update message")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "status": StatusRead})
}
