package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

var (
	allowedVideoTypes = map[string]bool{
		"video/mp4":       true,
		"video/quicktime": true,
		"video/mov":       true,
		"video/avi":       true,
		"video/x-msvideo": true,
		"video/webm":      true,
	}
	allowedVideoExtensions = map[string]bool{
		".mp4":  true,
		".mov":  true,
		".avi":  true,
		".webm": true,
	}
)

// ValidateVideo enforces the video whitelist and size cap. Browsers are
// inconsistent about video MIME types, so the file extension is accepted as
// a fallback.
func ValidateVideo(f File, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(f.Name))
	if !allowedVideoTypes[strings.ToLower(f.ContentType)] && !allowedVideoExtensions[ext] {
		return fmt.Errorf("please select a valid video file (MP4, MOV, AVI, WEBM)")
	}
	if int64(len(f.Data)) > maxBytes {
		return fmt.Errorf("video file size must be less than %dMB", maxBytes/(1024*1024))
	}
	return nil
}

// SizeMB reports a payload size in megabytes, rounded to two decimals the
// way the upload form displayed it.
func SizeMB(data []byte) float64 {
	mb := float64(len(data)) / (1024 * 1024)
	return float64(int(mb*100+0.5)) / 100
}
