package repository

import (
	"context"

	"abbey-bites/internal/model"
)

// DefaultLimit caps the number of documents returned by a listing when the
// caller does not provide a limit. There is no enforced maximum and no
// pagination cursor.
const DefaultLimit = 50

// Collection names follow the original schema-derived convention: the
// lowercased entity kind.
const (
	menuCollection  = "menuitem"
	orderCollection = "order"
)

// MenuRepository defines data access operations for menu items.
type MenuRepository interface {
	// Create persists a menu item and returns its store-assigned identifier.
	Create(ctx context.Context, item model.MenuItem) (string, error)

	// List retrieves menu items in insertion order, optionally restricted to
	// an exact category match. A non-positive limit applies DefaultLimit.
	List(ctx context.Context, category string, limit int) ([]model.MenuItemDoc, error)
}

// OrderRepository defines data access operations for orders.
type OrderRepository interface {
	// Create persists an order and returns its store-assigned identifier.
	Create(ctx context.Context, order model.Order) (string, error)

	// List retrieves orders in insertion order, optionally restricted to an
	// exact status match. A non-positive limit applies DefaultLimit.
	List(ctx context.Context, status string, limit int) ([]model.OrderDoc, error)
}

// DiagnosticsRepository exposes the connectivity probes used by the
// diagnostic endpoint.
type DiagnosticsRepository interface {
	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// DatabaseName returns the name of the connected database.
	DatabaseName() string

	// ListCollections returns up to limit distinct collection names.
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
