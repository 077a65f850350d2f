package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"midnightsoldiers-backend/internal/config"
)

// ObjectUploader is the narrow contract the submission pipeline depends on.
// The progress callback, when non-nil, receives monotonically non-decreasing
// percentages and is guaranteed a final call at 100 before Upload returns.
type ObjectUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string, onProgress func(pct float64)) (string, error)
}

// MinIOStorage uploads binary blobs to a MinIO bucket and hands back
// publicly fetchable URLs.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{client: client, bucket: cfg.Bucket}, nil
}

// Upload puts one object into the bucket. key must be unique per logical
// asset; callers compose it from a generated id, an asset category and the
// original filename. No retry happens here; a transport error is returned
// as-is to the caller.
func (s *MinIOStorage) Upload(ctx context.Context, key string, data []byte, contentType string, onProgress func(pct float64)) (string, error) {
	var reader io.Reader = bytes.NewReader(data)
	if onProgress != nil {
		reader = &progressReader{
			inner: reader,
			total: int64(len(data)),
			report: func(pct float64) {
				onProgress(pct)
			},
		}
	}

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		reader,
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if onProgress != nil {
		onProgress(100)
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)
	return url, nil
}

// progressReader reports the fraction of bytes consumed by PutObject.
// Reads only ever move forward, so the reported percentages are
// non-decreasing by construction.
type progressReader struct {
	inner  io.Reader
	total  int64
	read   int64
	report func(pct float64)
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if n > 0 {
		r.read += int64(n)
		if r.total > 0 {
			pct := float64(r.read) / float64(r.total) * 100
			if pct > 100 {
				pct = 100
			}
			r.report(pct)
		}
	}
	return n, err
}
