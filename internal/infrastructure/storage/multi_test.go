package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader records every key it sees and replays a configurable
// progress sequence before returning a URL derived from the key.
type fakeUploader struct {
	mu       sync.Mutex
	keys     []string
	progress []float64
	failOn   string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string, onProgress func(pct float64)) (string, error) {
	f.mu.Lock()
	f.keys = append(f.keys, key)
	f.mu.Unlock()

	if f.failOn != "" && strings.Contains(key, f.failOn) {
		return "", fmt.Errorf("upload %s: connection reset", key)
	}

	seq := f.progress
	if seq == nil {
		seq = []float64{25, 50, 75, 100}
	}
	for _, pct := range seq {
		onProgress(pct)
	}
	return "https://cdn.test/" + key, nil
}

func testFiles(n int) []File {
	files := make([]File, n)
	for i := range files {
		files[i] = File{
			Name:        fmt.Sprintf("work_%d.jpg", i),
			ContentType: "image/jpeg",
			Data:        []byte("jpeg-bytes"),
		}
	}
	return files
}

func TestUploadAll_ReturnsURLsInFileOrder(t *testing.T) {
	uploader := &fakeUploader{}
	multi := NewMultiUploader(uploader)

	files := testFiles(5)
	urls, err := multi.UploadAll(context.Background(), files, "artists/abc/works/", nil)
	require.NoError(t, err)
	require.Len(t, urls, 5)

	// URL order must match file order even though uploads run concurrently.
	for i, url := range urls {
		assert.Contains(t, url, fmt.Sprintf("_%d_work_%d.jpg", i, i))
		assert.True(t, strings.HasPrefix(url, "https://cdn.test/artists/abc/works/"))
	}
}

func TestUploadAll_OverallProgressMonotonicAndComplete(t *testing.T) {
	uploader := &fakeUploader{progress: []float64{10, 40, 90, 100}}
	multi := NewMultiUploader(uploader)

	var reported []float64
	_, err := multi.UploadAll(context.Background(), testFiles(3), "artists/abc/works/", func(pct float64) {
		reported = append(reported, pct)
	})
	require.NoError(t, err)
	require.NotEmpty(t, reported)

	for i := 1; i < len(reported); i++ {
		assert.GreaterOrEqual(t, reported[i], reported[i-1],
			"overall progress must never decrease")
	}
	assert.InDelta(t, 100, reported[len(reported)-1], 0.001)

	for _, pct := range reported {
		assert.LessOrEqual(t, pct, 100.0)
		assert.GreaterOrEqual(t, pct, 0.0)
	}
}

func TestUploadAll_FailFastReturnsNoPartialList(t *testing.T) {
	uploader := &fakeUploader{failOn: "work_1"}
	multi := NewMultiUploader(uploader)

	urls, err := multi.UploadAll(context.Background(), testFiles(3), "artists/abc/works/", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Nil(t, urls)
}

func TestUploadAll_EmptyInput(t *testing.T) {
	multi := NewMultiUploader(&fakeUploader{})

	urls, err := multi.UploadAll(context.Background(), nil, "artists/abc/works/", nil)
	require.NoError(t, err)
	assert.Nil(t, urls)
}

func TestUploadAll_KeysAreUniquePerFile(t *testing.T) {
	uploader := &fakeUploader{}
	multi := NewMultiUploader(uploader)

	_, err := multi.UploadAll(context.Background(), testFiles(4), "artists/abc/works/", nil)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, key := range uploader.keys {
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
