package reel

import (
	"context"
	"encoding/json"
	"fmt"

	"midnightsoldiers-backend/internal/infrastructure/database"
)

const Collection = "reels"

type Repository interface {
	Save(ctx context.Context, r *Reel) error
	GetByID(ctx context.Context, id string) (*Reel, error)
	ListAll(ctx context.Context) ([]Reel, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	store database.DocumentStore
}

func NewRepository(store database.DocumentStore) Repository {
	return &repository{store: store}
}

func (r *repository) Save(ctx context.Context, rec *Reel) error {
	return r.store.Set(ctx, Collection, rec.ID, rec)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Reel, error) {
	raw, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var rec Reel
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reel %s: %w", id, err)
	}
	return &rec, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Reel, error) {
	docs, err := r.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	reels := make([]Reel, 0, len(docs))
	for _, raw := range docs {
		var rec Reel
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal reel: %w", err)
		}
		reels = append(reels, rec)
	}
	return reels, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, Collection)
}
