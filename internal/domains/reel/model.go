package reel

// Reel is a short promotional video clip posted to the gallery's social
// channels after it is stored.
type Reel struct {
	ID              string  `json:"id"`
	ReelName        string  `json:"reelName"`
	ReelDescription string  `json:"reelDescription"`
	ReelVideoURL    string  `json:"reelVideoUrl,omitempty"`
	ReelSize        float64 `json:"reelSize,omitempty"` // megabytes
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

const MaxDescriptionLength = 2200
