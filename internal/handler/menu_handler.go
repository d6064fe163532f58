package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"abbey-bites/internal/model"
	"abbey-bites/internal/schema"
	"abbey-bites/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Create handles POST /api/menu requests.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var payload schema.MenuItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateMenuItem(r.Context(), &payload)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			writeValidationError(w, ve, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateResponse{ID: id})
}

// List handles GET /api/menu requests with an optional category filter.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	category := r.URL.Query().Get("category")

	docs, err := h.service.ListMenuItems(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve menu items", h.logger)
		return
	}

	if docs == nil {
		docs = []model.MenuItemDoc{}
	}

	writeJSON(w, http.StatusOK, docs)
}
