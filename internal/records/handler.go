package records

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hotelmadagascar/concierge/pkg/logging"
)

// Lister reads stored bookings and contact requests for the admin API.
type Lister interface {
	ListBookings(ctx context.Context) ([]Booking, error)
	ListContactRequests(ctx context.Context) ([]ContactRequest, error)
}

// Handler provides HTTP endpoints for browsing saved records.
type Handler struct {
	repo   Lister
	logger *logging.Logger
}

// NewHandler creates a new records admin HTTP handler.
func NewHandler(repo Lister, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Routes returns a chi router with the record listing routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/bookings", h.ListBookings)
	r.Get("/contact-requests", h.ListContactRequests)
	return r
}

// ListBookings returns all saved bookings, newest first.
// GET /admin/bookings
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.repo.ListBookings(r.Context())
	if err != nil {
		h.logger.Error("failed to list bookings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(bookings); err != nil {
		h.logger.Error("failed to encode bookings", "error", err)
	}
}

// ListContactRequests returns all saved callback requests, newest first.
// GET /admin/contact-requests
func (h *Handler) ListContactRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.repo.ListContactRequests(r.Context())
	if err != nil {
		h.logger.Error("failed to list contact requests", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(requests); err != nil {
		h.logger.Error("failed to encode contact requests", "error", err)
	}
}
