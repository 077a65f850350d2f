package video

import (
	"context"
	"encoding/json"
	"fmt"

	"midnightsoldiers-backend/internal/infrastructure/database"
)

const Collection = "videos"

type Repository interface {
	Save(ctx context.Context, v *Video) error
	GetByID(ctx context.Context, id string) (*Video, error)
	ListAll(ctx context.Context) ([]Video, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	store database.DocumentStore
}

func NewRepository(store database.DocumentStore) Repository {
	return &repository{store: store}
}

func (r *repository) Save(ctx context.Context, rec *Video) error {
	return r.store.Set(ctx, Collection, rec.ID, rec)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Video, error) {
	raw, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var rec Video
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal video %s: %w", id, err)
	}
	return &rec, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Video, error) {
	docs, err := r.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	videos := make([]Video, 0, len(docs))
	for _, raw := range docs {
		var rec Video
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal video: %w", err)
		}
		videos = append(videos, rec)
	}
	return videos, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, Collection)
}
