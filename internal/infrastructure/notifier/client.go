package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"midnightsoldiers-backend/internal/config"
)

// ReelPayload is the body of the social-posting callout, keyed the way the
// companion backend expects it.
type ReelPayload struct {
	ReelName        string  `json:"reelName"`
	ReelDescription string  `json:"reelDescription"`
	ReelVideoURL    string  `json:"reelVideoUrl"`
	ReelSize        float64 `json:"reelSize"`
	ReelID          string  `json:"reelId"`
}

// Notifier posts persisted reel/video records to the companion
// social-media backend. Callers treat every error as best-effort.
type Notifier interface {
	PostToSocial(ctx context.Context, id string, payload ReelPayload) error
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.NotifierConfig) Notifier {
	return &client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *client) PostToSocial(ctx context.Context, id string, payload ReelPayload) error {
	if c.baseURL == "" {
		return fmt.Errorf("social api url is not configured")
	}

	payload.ReelID = id
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal social payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/post-to-social/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build social request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("social request failed: %w", err)
	}
	defer resp.Body.Close()

	// Response body is irrelevant beyond success/failure; drain it so the
	// connection can be reused.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("social api returned status %d", resp.StatusCode)
	}
	return nil
}
