package video

// Video is a standalone gallery video, stored and optionally announced on
// the social channels like a reel.
type Video struct {
	ID               string  `json:"id"`
	VideoName        string  `json:"videoName"`
	VideoDescription string  `json:"videoDescription"`
	VideoURL         string  `json:"videoUrl,omitempty"`
	VideoSize        float64 `json:"videoSize,omitempty"` // megabytes
	CreatedAt        string  `json:"createdAt,omitempty"`
	UpdatedAt        string  `json:"updatedAt,omitempty"`
}

const MaxDescriptionLength = 2500
