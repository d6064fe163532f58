package service

import (
	"context"
	"fmt"

	"abbey-bites/internal/model"
	"abbey-bites/internal/repository"
	"abbey-bites/internal/schema"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates and persists an order. Item names and prices are
// stored as submitted; they are snapshots, not live menu lookups.
func (s *orderService) CreateOrder(ctx context.Context, payload *schema.OrderPayload) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("order payload is nil")
	}

	order, err := schema.ValidateOrder(payload)
	if err != nil {
		s.logger.Warn().Err(err).Msg("order validation failed")
		return "", err
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Int("item_count", len(order.Items)).Msg("failed to create order")
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", id).
		Int("item_count", len(order.Items)).
		Str("status", order.Status).
		Str("payment_method", order.PaymentMethod).
		Msg("order created")

	return id, nil
}

// ListOrders retrieves orders, optionally restricted to a status. A
// non-positive limit applies the repository default.
func (s *orderService) ListOrders(ctx context.Context, status string, limit int) ([]model.OrderDoc, error) {
	docs, err := s.orderRepo.List(ctx, status, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("status", status).Int("limit", limit).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	s.logger.Debug().
		Int("count", len(docs)).
		Str("status", status).
		Int("limit", limit).
		Msg("retrieved orders")

	return docs, nil
}
