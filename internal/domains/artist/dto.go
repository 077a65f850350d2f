package artist

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitRequest carries the artist form fields. A non-empty ID means the
// submission edits an existing record instead of creating a new one.
type SubmitRequest struct {
	ID                  string `form:"id" json:"id"`
	ArtistName          string `form:"artistName" json:"artistName"`
	ArtistBio           string `form:"artistBio" json:"artistBio"`
	FacebookProfile     string `form:"facebookProfile" json:"facebookProfile"`
	TwitterProfile      string `form:"twitterProfile" json:"twitterProfile"`
	InstagramProfile    string `form:"instagramProfile" json:"instagramProfile"`
	OtherProfile        string `form:"otherProfile" json:"otherProfile"`
	ExhibitionName      string `form:"exhibitionName" json:"exhibitionName"`
	ExhibitionStartDate string `form:"exhibitionStartDate" json:"exhibitionStartDate"`
	ExhibitionEndDate   string `form:"exhibitionEndDate" json:"exhibitionEndDate"`
}

// Validate runs the field-level checks. now decides "today" for the
// start-date rule, injected so tests control the clock.
func (r SubmitRequest) Validate(now time.Time) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArtistName,
			validation.Required.Error("Artist name is required"),
		),
		validation.Field(&r.ArtistBio,
			validation.Required.Error("Artist bio is required"),
			validation.Length(0, MaxBioLength).Error(fmt.Sprintf("Artist bio must be at most %d characters", MaxBioLength)),
		),
		validation.Field(&r.FacebookProfile, optionalURL()...),
		validation.Field(&r.TwitterProfile, optionalURL()...),
		validation.Field(&r.InstagramProfile, optionalURL()...),
		validation.Field(&r.OtherProfile, optionalURL()...),
		validation.Field(&r.ExhibitionName,
			validation.Required.Error("Exhibition name is required"),
		),
		validation.Field(&r.ExhibitionStartDate,
			validation.Required.Error("Exhibition start date is required"),
			validation.Date(DateLayout).Error("Exhibition start date must be a valid date"),
			validation.By(r.startNotInPast(now)),
		),
		validation.Field(&r.ExhibitionEndDate,
			validation.Required.Error("Exhibition end date is required"),
			validation.Date(DateLayout).Error("Exhibition end date must be a valid date"),
			validation.By(r.endAfterStart),
		),
	)
}

func optionalURL() []validation.Rule {
	return []validation.Rule{
		is.URL.Error("must be a valid URL"),
	}
}

// startNotInPast applies only to new records; edits keep their original
// exhibition window even once it has begun.
func (r SubmitRequest) startNotInPast(now time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		if r.ID != "" {
			return nil
		}
		s, _ := value.(string)
		start, err := time.Parse(DateLayout, s)
		if err != nil {
			return nil // format already reported by the Date rule
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if start.Before(today) {
			return fmt.Errorf("Exhibition start date cannot be in the past")
		}
		return nil
	}
}

func (r SubmitRequest) endAfterStart(value interface{}) error {
	end, err := time.Parse(DateLayout, value.(string))
	if err != nil {
		return nil
	}
	start, err := time.Parse(DateLayout, r.ExhibitionStartDate)
	if err != nil {
		return nil
	}
	if !end.After(start) {
		return fmt.Errorf("End date must be after start date")
	}
	return nil
}
