package submission

import (
	"context"
	"fmt"
	"time"

	"midnightsoldiers-backend/pkg/logger"
)

// Stages declares what one submission attempt does. Validate runs first and
// is the only synchronous, side-effect-free stage; any nil stage is skipped.
// Notify failures never fail the attempt: by the time notification runs the
// record is already durably persisted.
type Stages struct {
	// Validate returns field-keyed error messages; non-empty means the
	// attempt fails before any network call is made.
	Validate func() map[string]string

	// UploadPrimary uploads the main asset (artist photo, video file).
	// report receives 0..100 for this stage alone.
	UploadPrimary func(ctx context.Context, report func(pct float64)) error

	// UploadSecondary uploads the remaining assets (exemplary works).
	UploadSecondary func(ctx context.Context, report func(pct float64)) error

	// Persist writes the assembled record. Uploaded assets are not rolled
	// back if this fails; unreferenced objects stay orphaned in storage.
	Persist func(ctx context.Context) error

	// Notify performs the best-effort social-posting callout.
	Notify func(ctx context.Context) error
}

// Pipeline runs staged form submissions and publishes their progress to a
// shared tracker. One Pipeline instance serves every entity type; services
// parameterize it with their own Stages.
type Pipeline struct {
	tracker      *Tracker
	stageTimeout time.Duration
}

func NewPipeline(tracker *Tracker, stageTimeout time.Duration) *Pipeline {
	return &Pipeline{
		tracker:      tracker,
		stageTimeout: stageTimeout,
	}
}

func (p *Pipeline) Tracker() *Tracker {
	return p.tracker
}

// Run executes one attempt under the given submission id. The returned error
// mirrors the terminal state for callers that run the pipeline inline;
// handlers that fire it in a goroutine rely on the tracker instead.
func (p *Pipeline) Run(ctx context.Context, id string, st Stages) error {
	p.tracker.Set(id, Progress{Stage: StageValidating, Percent: 0})

	if st.Validate != nil {
		if fields := st.Validate(); len(fields) > 0 {
			p.tracker.Set(id, Progress{
				Stage:   StageFailed,
				Percent: 0,
				Error:   true,
				Message: "validation failed",
				Fields:  fields,
			})
			return fmt.Errorf("validation failed")
		}
	}
	p.tracker.Set(id, Progress{Stage: StageValidating, Percent: percentValidated})

	if st.UploadPrimary != nil {
		err := p.runStage(ctx, func(stageCtx context.Context) error {
			return st.UploadPrimary(stageCtx, func(pct float64) {
				p.tracker.Set(id, Progress{
					Stage:   StageUploadingPrimary,
					Percent: percentValidated + pct/100*primaryUploadSpan,
				})
			})
		})
		if err != nil {
			return p.fail(id, err)
		}
	}
	p.tracker.Set(id, Progress{Stage: StageUploadingPrimary, Percent: percentPrimaryDone})

	if st.UploadSecondary != nil {
		err := p.runStage(ctx, func(stageCtx context.Context) error {
			return st.UploadSecondary(stageCtx, func(pct float64) {
				p.tracker.Set(id, Progress{
					Stage:   StageUploadingSecondary,
					Percent: percentPrimaryDone + pct/100*secondaryUploadSpan,
				})
			})
		})
		if err != nil {
			return p.fail(id, err)
		}
	}

	p.tracker.Set(id, Progress{Stage: StagePersisting, Percent: percentPersisting})
	if st.Persist != nil {
		if err := p.runStage(ctx, st.Persist); err != nil {
			return p.fail(id, err)
		}
	}

	if st.Notify != nil {
		p.tracker.Set(id, Progress{Stage: StageNotifying, Percent: percentNotifying})
		if err := p.runStage(ctx, st.Notify); err != nil {
			// Record already persisted; log and carry on.
			logger.Warn("social notification failed", map[string]interface{}{
				"submission_id": id,
				"error":         err.Error(),
			})
		}
	}

	p.tracker.Set(id, Progress{Stage: StageSucceeded, Percent: percentDone})
	return nil
}

func (p *Pipeline) runStage(ctx context.Context, fn func(ctx context.Context) error) error {
	stageCtx, cancel := context.WithTimeout(ctx, p.stageTimeout)
	defer cancel()
	return fn(stageCtx)
}

func (p *Pipeline) fail(id string, err error) error {
	p.tracker.Set(id, Progress{
		Stage:   StageFailed,
		Percent: 0,
		Error:   true,
		Message: err.Error(),
	})
	return err
}
