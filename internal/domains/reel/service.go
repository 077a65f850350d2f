package reel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"midnightsoldiers-backend/internal/domains/submission"
	"midnightsoldiers-backend/internal/infrastructure/notifier"
	"midnightsoldiers-backend/internal/infrastructure/storage"
)

type Service interface {
	// Submit starts an asynchronous submission attempt and returns its
	// submission id for progress polling. video is required for new
	// records and optional for edits.
	Submit(ctx context.Context, req SubmitRequest, video *storage.File) (string, error)
	List(ctx context.Context) ([]Reel, error)
}

type service struct {
	repo     Repository
	uploader storage.ObjectUploader
	notifier notifier.Notifier
	pipeline *submission.Pipeline
	maxBytes int64
}

func NewService(
	repo Repository,
	uploader storage.ObjectUploader,
	n notifier.Notifier,
	pipeline *submission.Pipeline,
	maxVideoMB int,
) Service {
	return &service{
		repo:     repo,
		uploader: uploader,
		notifier: n,
		pipeline: pipeline,
		maxBytes: int64(maxVideoMB) * 1024 * 1024,
	}
}

func (s *service) List(ctx context.Context) ([]Reel, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Submit(ctx context.Context, req SubmitRequest, video *storage.File) (string, error) {
	submissionID := uuid.New().String()

	recordID := req.ID
	isNew := recordID == ""
	if isNew {
		recordID = uuid.New().String()
	}

	var (
		videoURL string
		sizeMB   float64
	)

	stages := submission.Stages{
		Validate: func() map[string]string {
			fields := submission.FieldErrors(req.Validate())
			if fields == nil {
				fields = map[string]string{}
			}
			if isNew && video == nil {
				fields["videoFile"] = "Video file is required"
			}
			if video != nil {
				if err := storage.ValidateVideo(*video, s.maxBytes); err != nil {
					fields["videoFile"] = err.Error()
				}
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		},
		Persist: func(stageCtx context.Context) error {
			now := time.Now().UTC().Format(time.RFC3339)
			record := &Reel{
				ID:              recordID,
				ReelName:        req.ReelName,
				ReelDescription: req.ReelDescription,
				ReelVideoURL:    videoURL,
				ReelSize:        sizeMB,
				UpdatedAt:       now,
			}
			if isNew {
				record.CreatedAt = now
			}
			// Omitted URL/size fields leave the stored values in place on
			// edits without a new file.
			return s.repo.Save(stageCtx, record)
		},
		Notify: func(stageCtx context.Context) error {
			// Re-read the merged record so edits without a new file still
			// post the stored video URL.
			rec, err := s.repo.GetByID(stageCtx, recordID)
			if err != nil {
				return err
			}
			return s.notifier.PostToSocial(stageCtx, rec.ID, notifier.ReelPayload{
				ReelName:        rec.ReelName,
				ReelDescription: rec.ReelDescription,
				ReelVideoURL:    rec.ReelVideoURL,
				ReelSize:        rec.ReelSize,
			})
		},
	}

	if video != nil {
		stages.UploadPrimary = func(stageCtx context.Context, report func(pct float64)) error {
			key := fmt.Sprintf("reels/%s/%s", recordID, video.Name)
			url, err := s.uploader.Upload(stageCtx, key, video.Data, video.ContentType, report)
			if err != nil {
				return err
			}
			videoURL = url
			// Size is measured from the bytes the server actually received,
			// not from a client-reported figure.
			sizeMB = storage.SizeMB(video.Data)
			return nil
		}
	}

	go s.pipeline.Run(context.WithoutCancel(ctx), submissionID, stages)

	return submissionID, nil
}
