package repository

import (
	"context"

	"abbey-bites/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements OrderRepository on top of the generic document
// collection. An order embeds its items and customer info, so a create is a
// single-document write with no transaction to coordinate.
type orderRepository struct {
	coll *collection[model.Order]
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		coll: newCollection[model.Order](pool, orderCollection, logger.With().Str("repository", "order").Logger()),
	}
}

// Create persists an order and returns its store-assigned identifier.
func (r *orderRepository) Create(ctx context.Context, order model.Order) (string, error) {
	return r.coll.insert(ctx, order)
}

// List retrieves orders, optionally restricted to an exact status match.
func (r *orderRepository) List(ctx context.Context, status string, limit int) ([]model.OrderDoc, error) {
	filter := map[string]any{}
	if status != "" {
		filter["status"] = status
	}

	stored, err := r.coll.find(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]model.OrderDoc, len(stored))
	for i, s := range stored {
		docs[i] = model.OrderDoc{ID: s.ID, Order: s.Doc}
	}

	return docs, nil
}
