package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDocumentNotFound is returned when an id has no document in a collection.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore is a schemaless record store on top of Postgres. Records live
// in named collections as JSONB documents, one row per record, mirroring the
// hosted document database the site was originally built on. Typed
// repositories wrap it with their collection name and entity types.
type DocumentStore interface {
	// Add inserts a document with a server-generated id.
	Add(ctx context.Context, collection string, doc interface{}) (string, error)
	// Set upserts a document by id. On conflict the existing document is
	// merge-updated with the new fields in a single statement.
	Set(ctx context.Context, collection, id string, doc interface{}) error
	// Update merge-patches an existing document; ErrDocumentNotFound if absent.
	Update(ctx context.Context, collection, id string, patch interface{}) error
	// Get fetches one raw document.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	// ListAll returns every document in the collection, no pagination.
	ListAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int, error)
}

type documentStore struct {
	pool *pgxpool.Pool
}

func NewDocumentStore(pool *pgxpool.Pool) DocumentStore {
	return &documentStore{pool: pool}
}

// Migrate creates the documents table if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT        NOT NULL,
			id         TEXT        NOT NULL,
			data       JSONB       NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return nil
}

func marshalDoc(doc interface{}) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

func (s *documentStore) Add(ctx context.Context, collection string, doc interface{}) (string, error) {
	data, err := marshalDoc(doc)
	if err != nil {
		return "", err
	}

	// The generated id is folded into the document itself so listings carry
	// it without a separate projection.
	id := uuid.New().String()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3::jsonb || jsonb_build_object('id', $2::text))
	`, collection, id, data)
	if err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return id, nil
}

func (s *documentStore) Set(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := marshalDoc(doc)
	if err != nil {
		return err
	}

	// Single round trip: insert, or merge the new fields into the existing
	// document, preserving fields the caller did not send.
	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()
	`, collection, id, data)
	if err != nil {
		return fmt.Errorf("failed to set document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *documentStore) Update(ctx context.Context, collection, id string, patch interface{}) error {
	data, err := marshalDoc(patch)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE documents
		SET data = data || $3, updated_at = now()
		WHERE collection = $1 AND id = $2
	`, collection, id, data)
	if err != nil {
		return fmt.Errorf("failed to update document %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (s *documentStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var data json.RawMessage
	err := s.pool.QueryRow(ctx, `
		SELECT data FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}
	return data, nil
}

func (s *documentStore) ListAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT data FROM documents
		WHERE collection = $1
		ORDER BY created_at
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data json.RawMessage
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan document in %s: %w", collection, err)
		}
		docs = append(docs, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return docs, nil
}

func (s *documentStore) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FROM documents WHERE collection = $1
	`, collection).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count collection %s: %w", collection, err)
	}
	return n, nil
}
