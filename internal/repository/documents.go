package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// stored pairs a document with its store-assigned identifier. The identifier
// is a UUID internally but leaves this package only as a string.
type stored[T any] struct {
	ID  string
	Doc T
}

// collection is a generic document collection backed by JSONB rows in the
// documents table. All rows of one collection share a collection name; the
// row payload is the marshalled entity.
type collection[T any] struct {
	pool   *pgxpool.Pool
	name   string
	logger zerolog.Logger
}

func newCollection[T any](pool *pgxpool.Pool, name string, logger zerolog.Logger) *collection[T] {
	return &collection[T]{
		pool:   pool,
		name:   name,
		logger: logger.With().Str("collection", name).Logger(),
	}
}

// insert serializes the document and writes it as a new row. The identifier
// is assigned here and returned in string form. Writes are not retried.
func (c *collection[T]) insert(ctx context.Context, doc T) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to marshal document")
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	id := uuid.New().String()

	query := `
		INSERT INTO documents (id, collection, doc)
		VALUES ($1, $2, $3)
	`

	if _, err := c.pool.Exec(ctx, query, id, c.name, body); err != nil {
		c.logger.Error().Err(err).Str("document_id", id).Msg("failed to insert document")
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	c.logger.Debug().Str("document_id", id).Msg("document inserted")

	return id, nil
}

// find retrieves documents matching the filter in insertion order. The filter
// is a field-to-value mapping compiled to JSONB containment; an empty filter
// matches everything. A non-positive limit applies DefaultLimit.
func (c *collection[T]) find(ctx context.Context, filter map[string]any, limit int) ([]stored[T], error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if filter == nil {
		filter = map[string]any{}
	}

	match, err := json.Marshal(filter)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to marshal filter")
		return nil, fmt.Errorf("failed to marshal filter: %w", err)
	}

	query := `
		SELECT id::text, doc
		FROM documents
		WHERE collection = $1 AND doc @> $2
		ORDER BY seq
		LIMIT $3
	`

	rows, err := c.pool.Query(ctx, query, c.name, match, limit)
	if err != nil {
		c.logger.Error().Err(err).Int("limit", limit).Msg("failed to query documents")
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []stored[T]
	for rows.Next() {
		var s stored[T]
		var raw []byte
		if err := rows.Scan(&s.ID, &raw); err != nil {
			c.logger.Error().Err(err).Msg("failed to scan document row")
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if err := json.Unmarshal(raw, &s.Doc); err != nil {
			c.logger.Error().Err(err).Str("document_id", s.ID).Msg("failed to unmarshal document")
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		docs = append(docs, s)
	}

	if err := rows.Err(); err != nil {
		c.logger.Error().Err(err).Msg("error iterating document rows")
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}
