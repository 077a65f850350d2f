package artist

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"midnightsoldiers-backend/internal/infrastructure/database"
	"midnightsoldiers-backend/pkg/cache"
	"midnightsoldiers-backend/pkg/logger"
)

// Collection is the canonical artists collection. The legacy site kept
// artists in a shared "midnightsoldiers" collection together with reels and
// videos; each entity type now has its own.
const Collection = "artists"

const (
	listCacheKey = "artists:all"
	listCacheTTL = 5 * time.Minute
)

type Repository interface {
	// Save upserts the record under its id (create or merge-update).
	Save(ctx context.Context, a *Artist) error
	GetByID(ctx context.Context, id string) (*Artist, error)
	// ListAll returns every artist sorted ascending by exhibition start
	// date, artists without a date last.
	ListAll(ctx context.Context) ([]Artist, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	store database.DocumentStore
	cache cache.Cache
}

func NewRepository(store database.DocumentStore, c cache.Cache) Repository {
	return &repository{store: store, cache: c}
}

func (r *repository) Save(ctx context.Context, a *Artist) error {
	if err := r.store.Set(ctx, Collection, a.ID, a); err != nil {
		return err
	}

	// The public listing is cached; drop it so the new record shows up.
	if r.cache != nil {
		if err := r.cache.Delete(ctx, listCacheKey); err != nil {
			logger.Warn("failed to invalidate artist list cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Artist, error) {
	raw, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	var a Artist
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artist %s: %w", id, err)
	}
	return &a, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Artist, error) {
	if r.cache != nil {
		var cached []Artist
		if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	docs, err := r.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, err
	}

	artists := make([]Artist, 0, len(docs))
	for _, raw := range docs {
		var a Artist
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal artist: %w", err)
		}
		artists = append(artists, a)
	}

	SortByExhibitionStart(artists)

	if r.cache != nil {
		if err := r.cache.Set(ctx, listCacheKey, artists, listCacheTTL); err != nil {
			logger.Warn("failed to cache artist list", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return artists, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx, Collection)
}

// SortByExhibitionStart orders artists chronologically by exhibition start
// date. Records with a missing or unparseable date sort as if they started
// at the maximum date, so they land at the end.
func SortByExhibitionStart(artists []Artist) {
	sort.SliceStable(artists, func(i, j int) bool {
		return startDateOrMax(artists[i]).Before(startDateOrMax(artists[j]))
	})
}

func startDateOrMax(a Artist) time.Time {
	if a.ExhibitionStartDate == "" {
		return maxDate
	}
	t, err := time.Parse(DateLayout, a.ExhibitionStartDate)
	if err != nil {
		return maxDate
	}
	return t
}

var maxDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
