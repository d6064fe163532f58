package repository

import (
	"context"

	"abbey-bites/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements MenuRepository on top of the generic document
// collection.
type menuRepository struct {
	coll *collection[model.MenuItem]
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		coll: newCollection[model.MenuItem](pool, menuCollection, logger.With().Str("repository", "menu").Logger()),
	}
}

// Create persists a menu item and returns its store-assigned identifier.
func (r *menuRepository) Create(ctx context.Context, item model.MenuItem) (string, error) {
	return r.coll.insert(ctx, item)
}

// List retrieves menu items, optionally restricted to an exact category match.
func (r *menuRepository) List(ctx context.Context, category string, limit int) ([]model.MenuItemDoc, error) {
	filter := map[string]any{}
	if category != "" {
		filter["category"] = category
	}

	stored, err := r.coll.find(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]model.MenuItemDoc, len(stored))
	for i, s := range stored {
		docs[i] = model.MenuItemDoc{ID: s.ID, MenuItem: s.Doc}
	}

	return docs, nil
}
