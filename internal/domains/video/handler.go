package video

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"midnightsoldiers-backend/internal/shared/response"
	"midnightsoldiers-backend/internal/shared/utils"
	"midnightsoldiers-backend/pkg/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /videos.
func (h *Handler) List(c *gin.Context) {
	videos, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list videos", err)
		response.InternalServerError(c, "Failed to load videos")
		return
	}
	response.Success(c, http.StatusOK, videos)
}

// Submit handles POST /videos - multipart form with the video fields and an
// optional videoFile (required for new records, enforced by validation).
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid form data")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "invalid multipart form")
		return
	}

	file, err := utils.ReadFormFile(form, "videoFile")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	submissionID, err := h.service.Submit(c.Request.Context(), req, file)
	if err != nil {
		logger.Error("failed to start video submission", err)
		response.InternalServerError(c, "Failed to start submission")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"submission_id": submissionID})
}
