package service

import (
	"context"
	"fmt"

	"abbey-bites/internal/model"
	"abbey-bites/internal/repository"
	"abbey-bites/internal/schema"

	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// CreateMenuItem validates and persists a menu item.
func (s *menuService) CreateMenuItem(ctx context.Context, payload *schema.MenuItemPayload) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("menu item payload is nil")
	}

	item, err := schema.ValidateMenuItem(payload)
	if err != nil {
		s.logger.Warn().Err(err).Msg("menu item validation failed")
		return "", err
	}

	id, err := s.menuRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create menu item")
		return "", fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().
		Str("menu_item_id", id).
		Str("name", item.Name).
		Str("category", item.Category).
		Msg("menu item created")

	return id, nil
}

// ListMenuItems retrieves menu items, optionally restricted to a category.
// No explicit limit is passed; the repository default applies.
func (s *menuService) ListMenuItems(ctx context.Context, category string) ([]model.MenuItemDoc, error) {
	docs, err := s.menuRepo.List(ctx, category, 0)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	s.logger.Debug().
		Int("count", len(docs)).
		Str("category", category).
		Msg("retrieved menu items")

	return docs, nil
}
