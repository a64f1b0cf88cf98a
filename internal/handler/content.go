package handler

import (
	"net/http"

	"github.com/avtostrahovanie/landing/internal/content"
)

// ContentHandler exposes the page copy as JSON.
type ContentHandler struct {
	page *content.Page
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(page *content.Page) *ContentHandler {
	return &ContentHandler{page: page}
}

// Get handles GET /api/v1/content.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, h.page)
}
