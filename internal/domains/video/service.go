package video

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
	// submission id for progress polling. file is required for new
	// records and optional for edits.
	Submit(ctx context.Context, req SubmitRequest, file *storage.File) (string, error)
	List(ctx context.Context) ([]Video, error)
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

func (s *service) List(ctx context.Context) ([]Video, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Submit(ctx context.Context, req SubmitRequest, file *storage.File) (string, error) {
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
			if isNew && file == nil {
				fields["videoFile"] = "Video file is required"
			}
			if file != nil {
				if err := storage.ValidateVideo(*file, s.maxBytes); err != nil {
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
			record := &Video{
				ID:               recordID,
				VideoName:        req.VideoName,
				VideoDescription: req.VideoDescription,
				VideoURL:         videoURL,
				VideoSize:        sizeMB,
				UpdatedAt:        now,
			}
			if isNew {
				record.CreatedAt = now
			}
			return s.repo.Save(stageCtx, record)
		},
		Notify: func(stageCtx context.Context) error {
			rec, err := s.repo.GetByID(stageCtx, recordID)
			if err != nil {
				return err
			}
			// The companion backend accepts one payload shape for both
			// reels and standalone videos.
			return s.notifier.PostToSocial(stageCtx, rec.ID, notifier.ReelPayload{
				ReelName:        rec.VideoName,
				ReelDescription: rec.VideoDescription,
				ReelVideoURL:    rec.VideoURL,
				ReelSize:        rec.VideoSize,
			})
		},
	}

	if file != nil {
		stages.UploadPrimary = func(stageCtx context.Context, report func(pct float64)) error {
			key := fmt.Sprintf("videos/%s/%s", recordID, file.Name)
			url, err := s.uploader.Upload(stageCtx, key, file.Data, file.ContentType, report)
			if err != nil {
				return err
			}
			videoURL = url
			sizeMB = storage.SizeMB(file.Data)
			return nil
		}
	}

	go s.pipeline.Run(context.WithoutCancel(ctx), submissionID, stages)

	return submissionID, nil
}
