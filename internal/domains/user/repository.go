package user

import (
	"context"
	"encoding/json"
	"fmt"

	"midnightsoldiers-backend/internal/infrastructure/database"
)

const Collection = "admins"

type Repository interface {
	Save(ctx context.Context, a *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

type repository struct {
	store database.DocumentStore
}

func NewRepository(store database.DocumentStore) Repository {
	return &repository{store: store}
}

func (r *repository) Save(ctx context.Context, a *Admin) error {
	return r.store.Set(ctx, Collection, a.Email, a)
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	raw, err := r.store.Get(ctx, Collection, email)
	if err != nil {
		return nil, err
	}
	var a Admin
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin %s: %w", email, err)
	}
	return &a, nil
}
