package reel

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SubmitRequest carries the reel form fields. A non-empty ID edits an
// existing record; new records additionally require a video file.
type SubmitRequest struct {
	ID              string `form:"id" json:"id"`
	ReelName        string `form:"reelName" json:"reelName"`
	ReelDescription string `form:"reelDescription" json:"reelDescription"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReelName,
			validation.Required.Error("Reel name is required"),
		),
		validation.Field(&r.ReelDescription,
			validation.Required.Error("Reel description is required"),
			validation.Length(0, MaxDescriptionLength).Error(fmt.Sprintf("Reel description must be at most %d characters", MaxDescriptionLength)),
		),
	)
}
