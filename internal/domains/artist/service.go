package artist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"midnightsoldiers-backend/internal/domains/submission"
	"midnightsoldiers-backend/internal/infrastructure/storage"
)

// ThumbnailSize is the bounding box of the artist photo thumbnail rendered
// next to the original upload.
const ThumbnailSize = 300

type Service interface {
	// Submit starts an asynchronous submission attempt and returns its
	// submission id for progress polling.
	Submit(ctx context.Context, req SubmitRequest, photo *storage.File, works []storage.File) (string, error)
	List(ctx context.Context) ([]Artist, error)
}

type service struct {
	repo      Repository
	uploader  storage.ObjectUploader
	multi     *storage.MultiUploader
	images    *storage.ImageProcessor
	pipeline  *submission.Pipeline
	maxImages int
}

func NewService(
	repo Repository,
	uploader storage.ObjectUploader,
	images *storage.ImageProcessor,
	pipeline *submission.Pipeline,
	maxImages int,
) Service {
	return &service{
		repo:      repo,
		uploader:  uploader,
		multi:     storage.NewMultiUploader(uploader),
		images:    images,
		pipeline:  pipeline,
		maxImages: maxImages,
	}
}

func (s *service) List(ctx context.Context) ([]Artist, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Submit(ctx context.Context, req SubmitRequest, photo *storage.File, works []storage.File) (string, error) {
	submissionID := uuid.New().String()

	recordID := req.ID
	isNew := recordID == ""
	if isNew {
		recordID = uuid.New().String()
	}

	// URLs collected across stages; the record is assembled only once every
	// upload has completed.
	var (
		photoURL string
		thumbURL string
		workURLs []string
	)

	stages := submission.Stages{
		Validate: func() map[string]string {
			fields := submission.FieldErrors(req.Validate(time.Now()))
			if fields == nil {
				fields = map[string]string{}
			}
			if photo != nil {
				if err := s.images.ValidateImage(photo.Data); err != nil {
					fields["artistPhoto"] = err.Error()
				}
			}
			if len(works) > s.maxImages {
				fields["exemplaryWorks"] = fmt.Sprintf("At most %d work images are allowed", s.maxImages)
			}
			for _, w := range works {
				if err := s.images.ValidateImage(w.Data); err != nil {
					fields["exemplaryWorks"] = fmt.Sprintf("%s: %s", w.Name, err.Error())
					break
				}
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		},
		Persist: func(stageCtx context.Context) error {
			now := time.Now().UTC().Format(time.RFC3339)
			record := &Artist{
				ID:                  recordID,
				ArtistName:          req.ArtistName,
				ArtistBio:           req.ArtistBio,
				FacebookProfile:     req.FacebookProfile,
				TwitterProfile:      req.TwitterProfile,
				InstagramProfile:    req.InstagramProfile,
				OtherProfile:        req.OtherProfile,
				ExhibitionName:      req.ExhibitionName,
				ExhibitionStartDate: req.ExhibitionStartDate,
				ExhibitionEndDate:   req.ExhibitionEndDate,
				ArtistPhotoURL:      photoURL,
				ArtistPhotoThumbURL: thumbURL,
				ExemplaryWorksURLs:  workURLs,
				UpdatedAt:           now,
			}
			if isNew {
				record.CreatedAt = now
			}
			// Empty URL fields are omitted from the document, so an edit
			// without new files keeps the previously stored URLs.
			return s.repo.Save(stageCtx, record)
		},
	}

	if photo != nil {
		stages.UploadPrimary = func(stageCtx context.Context, report func(pct float64)) error {
			key := fmt.Sprintf("artists/%s/photo/%s", recordID, photo.Name)
			url, err := s.uploader.Upload(stageCtx, key, photo.Data, photo.ContentType, report)
			if err != nil {
				return err
			}
			photoURL = url

			// Thumbnail is a rendering convenience; a failure here should
			// not sink an otherwise valid submission.
			if thumb, terr := s.images.Thumbnail(photo.Data, ThumbnailSize); terr == nil {
				thumbKey := fmt.Sprintf("artists/%s/photo/thumb_%s.jpg", recordID, photo.Name)
				if turl, uerr := s.uploader.Upload(stageCtx, thumbKey, thumb, "image/jpeg", nil); uerr == nil {
					thumbURL = turl
				}
			}
			return nil
		}
	}

	if len(works) > 0 {
		stages.UploadSecondary = func(stageCtx context.Context, report func(pct float64)) error {
			basePath := fmt.Sprintf("artists/%s/works/", recordID)
			urls, err := s.multi.UploadAll(stageCtx, works, basePath, report)
			if err != nil {
				return err
			}
			workURLs = urls
			return nil
		}
	}

	// The submission outlives the HTTP request that started it; progress is
	// polled through the tracker.
	go s.pipeline.Run(context.WithoutCancel(ctx), submissionID, stages)

	return submissionID, nil
}
