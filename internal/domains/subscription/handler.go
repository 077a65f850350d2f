package subscription

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"midnightsoldiers-backend/internal/shared/response"
	"midnightsoldiers-backend/pkg/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /subscriptions with the full mailing form.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.CreateFull(c.Request.Context(), req)
	if err != nil {
		h.handleCreateError(c, err, "Failed to submit subscription. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// CreateNewsletter handles POST /subscriptions/newsletter, email only.
func (h *Handler) CreateNewsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.CreateNewsletter(c.Request.Context(), req)
	if err != nil {
		h.handleCreateError(c, err, "Failed to subscribe to newsletter. Please try again.")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// List handles GET /admin/subscriptions.
func (h *Handler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list subscriptions", err)
		response.InternalServerError(c, "Failed to load subscriptions")
		return
	}
	response.Success(c, http.StatusOK, subs)
}

// Export handles GET /admin/subscriptions/export, streaming an XLSX
// workbook of every subscriber.
func (h *Handler) Export(c *gin.Context) {
	f, err := h.service.ExportToExcel(c.Request.Context())
	if err != nil {
		logger.Error("failed to export subscriptions", err)
		response.InternalServerError(c, "Failed to export subscriptions")
		return
	}

	filename := fmt.Sprintf("subscribers_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if _, err := f.WriteTo(c.Writer); err != nil {
		logger.Error("failed to write export response", err)
	}
}

func (h *Handler) handleCreateError(c *gin.Context, err error, fallback string) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", fieldErrs)
		return
	}
	logger.Error("subscription create failed", err)
	response.InternalServerError(c, fallback)
}
