package submission

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline() (*Pipeline, *Tracker) {
	tracker := NewTrackerWithTTLs(50*time.Millisecond, 50*time.Millisecond)
	return NewPipeline(tracker, time.Minute), tracker
}

func TestRun_FullSuccessPath(t *testing.T) {
	pipeline, tracker := newTestPipeline()

	var calls []string
	st := Stages{
		Validate: func() map[string]string {
			calls = append(calls, "validate")
			return nil
		},
		UploadPrimary: func(ctx context.Context, report func(pct float64)) error {
			calls = append(calls, "primary")
			report(50)
			report(100)
			return nil
		},
		UploadSecondary: func(ctx context.Context, report func(pct float64)) error {
			calls = append(calls, "secondary")
			report(100)
			return nil
		},
		Persist: func(ctx context.Context) error {
			calls = append(calls, "persist")
			return nil
		},
		Notify: func(ctx context.Context) error {
			calls = append(calls, "notify")
			return nil
		},
	}

	err := pipeline.Run(context.Background(), "sub-1", st)
	require.NoError(t, err)
	assert.Equal(t, []string{"validate", "primary", "secondary", "persist", "notify"}, calls)

	progress, ok := tracker.Get("sub-1")
	require.True(t, ok)
	assert.Equal(t, StageSucceeded, progress.Stage)
	assert.Equal(t, 100.0, progress.Percent)
	assert.False(t, progress.Error)
}

func TestRun_ValidationFailureSkipsAllNetworkStages(t *testing.T) {
	pipeline, tracker := newTestPipeline()

	uploaded := false
	persisted := false
	st := Stages{
		Validate: func() map[string]string {
			return map[string]string{"artistName": "Artist name is required"}
		},
		UploadPrimary: func(ctx context.Context, report func(pct float64)) error {
			uploaded = true
			return nil
		},
		Persist: func(ctx context.Context) error {
			persisted = true
			return nil
		},
	}

	err := pipeline.Run(context.Background(), "sub-2", st)
	require.Error(t, err)
	assert.False(t, uploaded, "upload must not run after validation failure")
	assert.False(t, persisted, "persist must not run after validation failure")

	progress, ok := tracker.Get("sub-2")
	require.True(t, ok)
	assert.Equal(t, StageFailed, progress.Stage)
	assert.True(t, progress.Error)
	assert.Equal(t, "Artist name is required", progress.Fields["artistName"])
}

func TestRun_UploadFailureStopsPipeline(t *testing.T) {
	pipeline, tracker := newTestPipeline()

	persisted := false
	st := Stages{
		UploadPrimary: func(ctx context.Context, report func(pct float64)) error {
			return fmt.Errorf("storage unreachable")
		},
		Persist: func(ctx context.Context) error {
			persisted = true
			return nil
		},
	}

	err := pipeline.Run(context.Background(), "sub-3", st)
	require.Error(t, err)
	assert.False(t, persisted)

	progress, _ := tracker.Get("sub-3")
	assert.Equal(t, StageFailed, progress.Stage)
	assert.Equal(t, "storage unreachable", progress.Message)
}

func TestRun_NotifyFailureStillSucceeds(t *testing.T) {
	pipeline, tracker := newTestPipeline()

	st := Stages{
		Persist: func(ctx context.Context) error { return nil },
		Notify: func(ctx context.Context) error {
			return fmt.Errorf("social api returned status 502")
		},
	}

	err := pipeline.Run(context.Background(), "sub-4", st)
	require.NoError(t, err, "notification is best-effort")

	progress, _ := tracker.Get("sub-4")
	assert.Equal(t, StageSucceeded, progress.Stage)
	assert.Equal(t, 100.0, progress.Percent)
}

func TestRun_ProgressMapsUploadPercentsIntoStageSpans(t *testing.T) {
	pipeline, tracker := newTestPipeline()

	var midPrimary, midSecondary Progress
	st := Stages{
		UploadPrimary: func(ctx context.Context, report func(pct float64)) error {
			report(50)
			midPrimary, _ = tracker.Get("sub-5")
			return nil
		},
		UploadSecondary: func(ctx context.Context, report func(pct float64)) error {
			report(50)
			midSecondary, _ = tracker.Get("sub-5")
			return nil
		},
		Persist: func(ctx context.Context) error { return nil },
	}

	require.NoError(t, pipeline.Run(context.Background(), "sub-5", st))

	// Primary covers 10..60, secondary 60..85.
	assert.Equal(t, StageUploadingPrimary, midPrimary.Stage)
	assert.InDelta(t, 35, midPrimary.Percent, 0.001)
	assert.Equal(t, StageUploadingSecondary, midSecondary.Stage)
	assert.InDelta(t, 72.5, midSecondary.Percent, 0.001)
}

func TestTracker_TerminalEntriesExpire(t *testing.T) {
	tracker := NewTrackerWithTTLs(10*time.Millisecond, 10*time.Millisecond)

	tracker.Set("done", Progress{Stage: StageSucceeded, Percent: 100})
	_, ok := tracker.Get("done")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := tracker.Get("done")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestTracker_UnknownIDIsIdle(t *testing.T) {
	tracker := NewTracker()

	progress, ok := tracker.Get("never-started")
	assert.False(t, ok)
	assert.Equal(t, StageIdle, progress.Stage)
	assert.Equal(t, 0.0, progress.Percent)
}
