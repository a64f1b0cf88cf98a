package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avtostrahovanie/landing/internal/handler/dto"
	"github.com/avtostrahovanie/landing/internal/service"
)

// ContactHandler handles HTTP requests for contact submissions.
type ContactHandler struct {
	svc    *service.ContactService
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		logger: logger,
	}
}

// Submit handles POST /api/v1/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	receipt, err := h.svc.Submit(r.Context(), req.ToModel())
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, dto.ToContactReceiptResponse(receipt))
	case errors.Is(err, service.ErrIncompleteContact):
		writeError(w, http.StatusUnprocessableEntity, "INCOMPLETE_INPUT", "Name and phone are required", service.MissingFields(err)...)
	default:
		h.logger.Error("contact_service_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
