package artist

import (
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func validRequest() SubmitRequest {
	return SubmitRequest{
		ArtistName:          "Mika Tran",
		ArtistBio:           "Sculptor working in reclaimed steel.",
		ExhibitionName:      "Afterglow",
		ExhibitionStartDate: "2026-03-01",
		ExhibitionEndDate:   "2026-04-01",
	}
}

func fieldError(t *testing.T, err error, field string) string {
	t.Helper()
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	require.Contains(t, errs, field)
	return errs[field].Error()
}

func TestSubmitRequest_Validate(t *testing.T) {
	t.Run("valid new record", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate(testNow))
	})

	t.Run("missing name", func(t *testing.T) {
		req := validRequest()
		req.ArtistName = ""
		msg := fieldError(t, req.Validate(testNow), "artistName")
		assert.Equal(t, "Artist name is required", msg)
	})

	t.Run("bio too long", func(t *testing.T) {
		req := validRequest()
		req.ArtistBio = strings.Repeat("a", MaxBioLength+1)
		msg := fieldError(t, req.Validate(testNow), "artistBio")
		assert.Contains(t, msg, "at most 2500")
	})

	t.Run("start in the past rejected for new records", func(t *testing.T) {
		req := validRequest()
		req.ExhibitionStartDate = "2026-02-01"
		msg := fieldError(t, req.Validate(testNow), "exhibitionStartDate")
		assert.Contains(t, msg, "cannot be in the past")
	})

	t.Run("start in the past allowed for edits", func(t *testing.T) {
		req := validRequest()
		req.ID = "existing-id"
		req.ExhibitionStartDate = "2026-02-01"
		assert.NoError(t, req.Validate(testNow))
	})

	t.Run("start today allowed", func(t *testing.T) {
		req := validRequest()
		req.ExhibitionStartDate = "2026-02-10"
		req.ExhibitionEndDate = "2026-02-11"
		assert.NoError(t, req.Validate(testNow))
	})

	t.Run("end must be after start", func(t *testing.T) {
		req := validRequest()
		req.ExhibitionEndDate = req.ExhibitionStartDate
		msg := fieldError(t, req.Validate(testNow), "exhibitionEndDate")
		assert.Equal(t, "End date must be after start date", msg)
	})

	t.Run("social profile must be a URL", func(t *testing.T) {
		req := validRequest()
		req.InstagramProfile = "not a url"
		msg := fieldError(t, req.Validate(testNow), "instagramProfile")
		assert.Contains(t, msg, "valid URL")
	})

	t.Run("empty social profiles allowed", func(t *testing.T) {
		req := validRequest()
		req.FacebookProfile = ""
		req.TwitterProfile = ""
		assert.NoError(t, req.Validate(testNow))
	})
}
