package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnightsoldiers-backend/internal/config"
)

func TestPostToSocial(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(config.NotifierConfig{BaseURL: srv.URL})

	err := client.PostToSocial(context.Background(), "reel-42", ReelPayload{
		ReelName:        "Opening Night",
		ReelDescription: "Doors at eight.",
		ReelVideoURL:    "https://cdn.test/reels/reel-42/launch.mp4",
		ReelSize:        12.5,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/post-to-social/reel-42", gotPath)
	assert.Equal(t, "Opening Night", gotBody["reelName"])
	assert.Equal(t, "https://cdn.test/reels/reel-42/launch.mp4", gotBody["reelVideoUrl"])
	assert.Equal(t, 12.5, gotBody["reelSize"])
	assert.Equal(t, "reel-42", gotBody["reelId"], "id from the URL is folded into the body")
}

func TestPostToSocial_Non2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(config.NotifierConfig{BaseURL: srv.URL})

	err := client.PostToSocial(context.Background(), "reel-42", ReelPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestPostToSocial_UnconfiguredBaseURL(t *testing.T) {
	client := NewClient(config.NotifierConfig{})

	err := client.PostToSocial(context.Background(), "reel-42", ReelPayload{})
	assert.Error(t, err)
}
