package artist

// Artist is a gallery artist together with their scheduled exhibition.
// JSON keys match the documents the legacy site wrote, so existing records
// keep loading. URL fields are populated only after the corresponding
// upload completed; a failed upload aborts before the record is written.
type Artist struct {
	ID                  string   `json:"id"`
	ArtistName          string   `json:"artistName"`
	ArtistBio           string   `json:"artistBio"`
	FacebookProfile     string   `json:"facebookProfile,omitempty"`
	TwitterProfile      string   `json:"twitterProfile,omitempty"`
	InstagramProfile    string   `json:"instagramProfile,omitempty"`
	OtherProfile        string   `json:"otherProfile,omitempty"`
	ExhibitionName      string   `json:"exhibitionName"`
	ExhibitionStartDate string   `json:"exhibitionStartDate"` // YYYY-MM-DD
	ExhibitionEndDate   string   `json:"exhibitionEndDate"`   // YYYY-MM-DD
	ArtistPhotoURL      string   `json:"artistPhotoURL,omitempty"`
	ArtistPhotoThumbURL string   `json:"artistPhotoThumbURL,omitempty"`
	ExemplaryWorksURLs  []string `json:"exemplaryWorksURLs,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"` // RFC 3339
	UpdatedAt           string   `json:"updatedAt,omitempty"`
}

// MaxBioLength caps the artist bio, same limit the form enforced.
const MaxBioLength = 2500

// DateLayout is the calendar-date format used by the exhibition fields.
const DateLayout = "2006-01-02"
