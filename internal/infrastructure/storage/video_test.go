package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVideo(t *testing.T) {
	maxBytes := int64(100 * 1024 * 1024)

	tests := []struct {
		name        string
		file        File
		wantErr     string
	}{
		{
			name: "mp4 by content type",
			file: File{Name: "clip.bin", ContentType: "video/mp4", Data: []byte("x")},
		},
		{
			name: "mov by extension with odd mime",
			file: File{Name: "clip.MOV", ContentType: "application/octet-stream", Data: []byte("x")},
		},
		{
			name: "webm",
			file: File{Name: "clip.webm", ContentType: "video/webm", Data: []byte("x")},
		},
		{
			name:    "rejected type",
			file:    File{Name: "clip.mkv", ContentType: "video/x-matroska", Data: []byte("x")},
			wantErr: "valid video file",
		},
		{
			name:    "oversized",
			file:    File{Name: "clip.mp4", ContentType: "video/mp4", Data: make([]byte, maxBytes+1)},
			wantErr: "less than 100MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVideo(tt.file, maxBytes)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSizeMB(t *testing.T) {
	assert.Equal(t, 0.0, SizeMB(nil))
	assert.Equal(t, 1.0, SizeMB(make([]byte, 1024*1024)))
	assert.Equal(t, 2.5, SizeMB(make([]byte, 2*1024*1024+512*1024)))
}
