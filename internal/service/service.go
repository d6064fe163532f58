package service

import (
	"context"

	"abbey-bites/internal/model"
	"abbey-bites/internal/schema"
)

// MenuService defines operations for menu management.
type MenuService interface {
	// CreateMenuItem validates and persists a menu item, returning its
	// identifier.
	CreateMenuItem(ctx context.Context, payload *schema.MenuItemPayload) (string, error)

	// ListMenuItems retrieves menu items, optionally restricted to a category.
	ListMenuItems(ctx context.Context, category string) ([]model.MenuItemDoc, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder validates and persists an order, returning its identifier.
	CreateOrder(ctx context.Context, payload *schema.OrderPayload) (string, error)

	// ListOrders retrieves orders, optionally restricted to a status, capped
	// at limit.
	ListOrders(ctx context.Context, status string, limit int) ([]model.OrderDoc, error)
}
