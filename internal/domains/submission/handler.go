package submission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"midnightsoldiers-backend/internal/shared/response"
)

type Handler struct {
	tracker *Tracker
}

func NewHandler(tracker *Tracker) *Handler {
	return &Handler{tracker: tracker}
}

// Get handles GET /submissions/:id, the progress polling endpoint. Unknown
// ids include any whose terminal descriptor has already expired.
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	progress, ok := h.tracker.Get(id)
	if !ok {
		response.NotFound(c, "Submission not found")
		return
	}
	response.Success(c, http.StatusOK, progress)
}
