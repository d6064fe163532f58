package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"abbey-bites/internal/model"
	"abbey-bites/internal/schema"
	"abbey-bites/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var payload schema.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateOrder(r.Context(), &payload)
	if err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			writeValidationError(w, ve, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateResponse{ID: id})
}

// List handles GET /api/orders requests with optional status and limit
// parameters. The limit defaults to 50 when absent.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	status := r.URL.Query().Get("status")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	docs, err := h.service.ListOrders(r.Context(), status, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}

	if docs == nil {
		docs = []model.OrderDoc{}
	}

	writeJSON(w, http.StatusOK, docs)
}
