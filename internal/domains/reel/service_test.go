package reel

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midnightsoldiers-backend/internal/domains/submission"
	"midnightsoldiers-backend/internal/infrastructure/notifier"
	"midnightsoldiers-backend/internal/infrastructure/storage"
)

type fakeRepo struct {
	mu      sync.Mutex
	records map[string]*Reel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*Reel)}
}

func (r *fakeRepo) Save(ctx context.Context, rec *Reel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mimic the merge upsert: empty URL and size never clobber stored
	// values.
	if existing, ok := r.records[rec.ID]; ok {
		merged := *existing
		merged.ReelName = rec.ReelName
		merged.ReelDescription = rec.ReelDescription
		merged.UpdatedAt = rec.UpdatedAt
		if rec.ReelVideoURL != "" {
			merged.ReelVideoURL = rec.ReelVideoURL
		}
		if rec.ReelSize != 0 {
			merged.ReelSize = rec.ReelSize
		}
		r.records[rec.ID] = &merged
		return nil
	}
	copied := *rec
	r.records[rec.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Reel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeRepo) ListAll(ctx context.Context) ([]Reel, error) { return nil, nil }
func (r *fakeRepo) Count(ctx context.Context) (int, error)      { return len(r.records), nil }

type fakeUploader struct{}

func (u *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string, onProgress func(pct float64)) (string, error) {
	if onProgress != nil {
		onProgress(100)
	}
	return "https://cdn.test/" + key, nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	payloads []notifier.ReelPayload
	err      error
}

func (n *fakeNotifier) PostToSocial(ctx context.Context, id string, payload notifier.ReelPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	payload.ReelID = id
	n.payloads = append(n.payloads, payload)
	return nil
}

func newTestService(t *testing.T) (Service, *fakeRepo, *fakeNotifier, *submission.Tracker) {
	t.Helper()
	repo := newFakeRepo()
	social := &fakeNotifier{}
	tracker := submission.NewTrackerWithTTLs(time.Minute, time.Minute)
	pipeline := submission.NewPipeline(tracker, time.Minute)
	svc := NewService(repo, &fakeUploader{}, social, pipeline, 100)
	return svc, repo, social, tracker
}

func waitForTerminal(t *testing.T, tracker *submission.Tracker, id string) submission.Progress {
	t.Helper()
	var progress submission.Progress
	require.Eventually(t, func() bool {
		p, ok := tracker.Get(id)
		if !ok {
			return false
		}
		progress = p
		return p.Stage == submission.StageSucceeded || p.Stage == submission.StageFailed
	}, 5*time.Second, 10*time.Millisecond)
	return progress
}

func videoFile() *storage.File {
	return &storage.File{
		Name:        "launch.mp4",
		ContentType: "video/mp4",
		Data:        make([]byte, 512*1024),
	}
}

func TestSubmit_NewReelUploadsPersistsAndNotifies(t *testing.T) {
	svc, repo, social, tracker := newTestService(t)

	req := SubmitRequest{ReelName: "Opening Night", ReelDescription: "Doors at eight."}
	id, err := svc.Submit(context.Background(), req, videoFile())
	require.NoError(t, err)

	progress := waitForTerminal(t, tracker, id)
	require.Equal(t, submission.StageSucceeded, progress.Stage)

	require.Len(t, social.payloads, 1)
	payload := social.payloads[0]
	assert.Equal(t, "Opening Night", payload.ReelName)
	assert.Contains(t, payload.ReelVideoURL, "launch.mp4")
	assert.Equal(t, 0.5, payload.ReelSize, "size measured from received bytes")
	assert.NotEmpty(t, payload.ReelID)

	saved, err := repo.GetByID(context.Background(), payload.ReelID)
	require.NoError(t, err)
	assert.Equal(t, payload.ReelVideoURL, saved.ReelVideoURL)
	assert.NotEmpty(t, saved.CreatedAt)
}

func TestSubmit_NewReelRequiresVideo(t *testing.T) {
	svc, repo, _, tracker := newTestService(t)

	req := SubmitRequest{ReelName: "Opening Night", ReelDescription: "Doors at eight."}
	id, err := svc.Submit(context.Background(), req, nil)
	require.NoError(t, err)

	progress := waitForTerminal(t, tracker, id)
	require.Equal(t, submission.StageFailed, progress.Stage)
	assert.Equal(t, "Video file is required", progress.Fields["videoFile"])
	count, _ := repo.Count(context.Background())
	assert.Zero(t, count)
}

func TestSubmit_EditWithoutVideoKeepsStoredURLAndStillNotifies(t *testing.T) {
	svc, repo, social, tracker := newTestService(t)

	// Seed an existing record the edit targets.
	existing := &Reel{
		ID:           "reel-7",
		ReelName:     "Old Title",
		ReelVideoURL: "https://cdn.test/reels/reel-7/original.mp4",
		ReelSize:     12.5,
		CreatedAt:    "2026-01-01T00:00:00Z",
	}
	require.NoError(t, repo.Save(context.Background(), existing))

	req := SubmitRequest{ID: "reel-7", ReelName: "New Title", ReelDescription: "Updated copy."}
	id, err := svc.Submit(context.Background(), req, nil)
	require.NoError(t, err)

	progress := waitForTerminal(t, tracker, id)
	require.Equal(t, submission.StageSucceeded, progress.Stage)

	saved, err := repo.GetByID(context.Background(), "reel-7")
	require.NoError(t, err)
	assert.Equal(t, "New Title", saved.ReelName)
	assert.Equal(t, "https://cdn.test/reels/reel-7/original.mp4", saved.ReelVideoURL)
	assert.Equal(t, 12.5, saved.ReelSize)

	// The notification re-reads the merged record, so the stored URL goes
	// out even though this submission carried no file.
	require.Len(t, social.payloads, 1)
	assert.Equal(t, "https://cdn.test/reels/reel-7/original.mp4", social.payloads[0].ReelVideoURL)
	assert.Equal(t, "New Title", social.payloads[0].ReelName)
}

func TestSubmit_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	svc, repo, social, tracker := newTestService(t)
	social.err = fmt.Errorf("social api returned status 502")

	req := SubmitRequest{ReelName: "Opening Night", ReelDescription: "Doors at eight."}
	id, err := svc.Submit(context.Background(), req, videoFile())
	require.NoError(t, err)

	progress := waitForTerminal(t, tracker, id)
	assert.Equal(t, submission.StageSucceeded, progress.Stage)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count, "record persisted despite failed notification")
}

func TestSubmit_RejectsWrongVideoType(t *testing.T) {
	svc, _, _, tracker := newTestService(t)

	file := &storage.File{Name: "deck.pdf", ContentType: "application/pdf", Data: []byte("x")}
	req := SubmitRequest{ReelName: "Opening Night", ReelDescription: "Doors at eight."}

	id, err := svc.Submit(context.Background(), req, file)
	require.NoError(t, err)

	progress := waitForTerminal(t, tracker, id)
	require.Equal(t, submission.StageFailed, progress.Stage)
	assert.Contains(t, progress.Fields["videoFile"], "valid video file")
}
