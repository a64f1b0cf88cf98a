package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avtostrahovanie/landing/internal/estimator"
	"github.com/avtostrahovanie/landing/internal/handler/dto"
	"github.com/avtostrahovanie/landing/internal/service"
)

// QuoteHandler handles HTTP requests for price quotes.
type QuoteHandler struct {
	svc    *service.QuoteService
	logger *slog.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(svc *service.QuoteService, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/v1/quotes.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	quote, err := h.svc.Quote(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQuoteResponse(quote))
}

// handleServiceError maps service errors to HTTP responses.
func (h *QuoteHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrIncompleteQuote):
		writeError(w, http.StatusUnprocessableEntity, "INCOMPLETE_INPUT", "All calculator fields are required", service.MissingFields(err)...)
	case errors.Is(err, estimator.ErrUnknownRegion):
		writeError(w, http.StatusBadRequest, "INVALID_REGION", "Region must be one of moscow, saint-petersburg, other")
	case errors.Is(err, service.ErrInvalidQuote):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid calculator input")
	default:
		h.logger.Error("quote_service_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
