package video

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SubmitRequest carries the video form fields. A non-empty ID edits an
// existing record; new records additionally require a video file.
type SubmitRequest struct {
	ID               string `form:"id" json:"id"`
	VideoName        string `form:"videoName" json:"videoName"`
	VideoDescription string `form:"videoDescription" json:"videoDescription"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.VideoName,
			validation.Required.Error("Video name is required"),
		),
		validation.Field(&r.VideoDescription,
			validation.Required.Error("Video description is required"),
			validation.Length(0, MaxDescriptionLength).Error(fmt.Sprintf("Video description must be at most %d characters", MaxDescriptionLength)),
		),
	)
}
