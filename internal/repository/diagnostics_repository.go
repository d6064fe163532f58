package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// diagnosticsRepository implements DiagnosticsRepository using the shared
// connection pool.
type diagnosticsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDiagnosticsRepository creates a new PostgreSQL-backed diagnostics repository.
func NewDiagnosticsRepository(pool *pgxpool.Pool, logger zerolog.Logger) DiagnosticsRepository {
	return &diagnosticsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "diagnostics").Logger(),
	}
}

// Ping verifies database connectivity.
func (r *diagnosticsRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("database ping failed")
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// DatabaseName returns the name of the connected database.
func (r *diagnosticsRepository) DatabaseName() string {
	return r.pool.Config().ConnConfig.Database
}

// ListCollections returns up to limit distinct collection names.
func (r *diagnosticsRepository) ListCollections(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT collection
		FROM documents
		ORDER BY collection
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to list collections")
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	collections := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection name: %w", err)
		}
		collections = append(collections, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collections: %w", err)
	}

	return collections, nil
}
