package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// File is one in-memory upload candidate. Callers enforce the file-count cap
// and content-type whitelist before handing files to the uploader.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// MultiUploader uploads a bounded set of files concurrently and folds the
// per-file progress signals into one overall percentage.
type MultiUploader struct {
	uploader ObjectUploader
}

func NewMultiUploader(uploader ObjectUploader) *MultiUploader {
	return &MultiUploader{uploader: uploader}
}

// UploadAll uploads every file under basePath and returns the URLs in file
// order, regardless of completion order. A single failed upload fails the
// whole call with the first error observed; no partial URL list is ever
// returned. In-flight siblings are not cancelled beyond ctx itself.
func (m *MultiUploader) UploadAll(ctx context.Context, files []File, basePath string, onOverallProgress func(pct float64)) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		fractions = make([]float64, len(files))
		urls      = make([]string, len(files))
		firstErr  error
		last      float64
	)

	// Recomputed on every per-file tick so the aggregate moves smoothly
	// instead of jumping at file boundaries. The accumulator update is
	// serialized; two files reporting at once cannot lose an update.
	reportOverall := func() {
		if onOverallProgress == nil {
			return
		}
		var sum float64
		for _, f := range fractions {
			sum += f
		}
		overall := sum / float64(len(files))
		if overall > 100 {
			overall = 100
		}
		if overall < last {
			overall = last
		}
		last = overall
		onOverallProgress(overall)
	}

	ts := time.Now().UnixMilli()
	for i, f := range files {
		wg.Add(1)
		go func(idx int, file File) {
			defer wg.Done()

			// Unique key per file so concurrent submissions never collide.
			key := fmt.Sprintf("%s%d_%d_%s", basePath, ts, idx, file.Name)

			url, err := m.uploader.Upload(ctx, key, file.Data, file.ContentType, func(pct float64) {
				mu.Lock()
				defer mu.Unlock()
				if pct > fractions[idx] {
					fractions[idx] = pct
				}
				reportOverall()
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			urls[idx] = url
			fractions[idx] = 100
			reportOverall()
		}(i, f)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return urls, nil
}
