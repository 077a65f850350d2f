package subscription

import (
	"context"
	"encoding/json"
	"fmt"

	"midnightsoldiers-backend/internal/infrastructure/database"
)

const Collection = "subscriptions"

type Repository interface {
	Add(ctx context.Context, s *Subscription) (string, error)
	ListAll(ctx context.Context) ([]Subscription, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	store database.DocumentStore
}

func NewRepository(store database.DocumentStore) Repository {
	return &repository{store: store}
}

func (r *repository) Add(ctx context.Context, rec *Subscription) (string, error) {
	return r.store.Add(ctx, Collection, rec)
}

func (r *repository) ListAll(ctx context.Context) ([]Subscription, error) {
	docs, err := r.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	subs := make([]Subscription, 0, len(docs))
	for _, raw := range docs {
		var rec Subscription
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subscription: %w", err)
		}
		subs = append(subs, rec)
	}
	return subs, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, Collection)
}
