package contact

import (
	"context"
	"encoding/json"
	"fmt"

	"midnightsoldiers-backend/internal/infrastructure/database"
)

const Collection = "contact_forms"

type Repository interface {
	Add(ctx context.Context, m *Message) (string, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListAll(ctx context.Context) ([]Message, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	store database.DocumentStore
}

func NewRepository(store database.DocumentStore) Repository {
	return &repository{store: store}
}

func (r *repository) Add(ctx context.Context, rec *Message) (string, error) {
	return r.store.Add(ctx, Collection, rec)
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.store.Update(ctx, Collection, id, map[string]string{"status": status})
}

func (r *repository) ListAll(ctx context.Context) ([]Message, error) {
	docs, err := r.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}
	msgs := make([]Message, 0, len(docs))
	for _, raw := range docs {
		var rec Message
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contact message: %w", err)
		}
		msgs = append(msgs, rec)
	}
	return msgs, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, Collection)
}
