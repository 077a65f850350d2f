package artist

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"midnightsoldiers-backend/internal/shared/response"
	"midnightsoldiers-backend/internal/shared/utils"
	"midnightsoldiers-backend/pkg/logger"
)

type Handler struct {
	service   Service
	maxImages int
}

func NewHandler(service Service, maxImages int) *Handler {
	return &Handler{service: service, maxImages: maxImages}
}

// List handles GET /artists - the public listing feeding the Artists and
// Exhibitions pages.
func (h *Handler) List(c *gin.Context) {
	artists, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list artists", err)
		response.InternalServerError(c, "Failed to load artists")
		return
	}
	response.Success(c, http.StatusOK, artists)
}

// Submit handles POST /artists - the admin artist information form.
// The multipart form carries the text fields plus an optional artistPhoto
// file and up to maxImages exemplaryWorks files. The submission itself runs
// asynchronously; the response carries the submission id to poll.
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

	photo, err := utils.ReadFormFile(form, "artistPhoto")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	workHeaders := form.File["exemplaryWorks"]
	if len(workHeaders) > h.maxImages {
		response.BadRequest(c, fmt.Sprintf("at most %d work images are allowed", h.maxImages))
		return
	}
	works, err := utils.ReadFormFiles(workHeaders)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	submissionID, err := h.service.Submit(c.Request.Context(), req, photo, works)
	if err != nil {
		logger.Error("failed to start artist submission", err)
		response.InternalServerError(c, "Failed to start submission")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"submission_id": submissionID})
}
