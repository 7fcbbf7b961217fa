package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/laxportraits/studio-leads/pkg/logging"
)

// Handler serves the read-only catalog endpoints consumed by the site.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// ListServices handles GET /api/services requests.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(Services()); err != nil {
		h.logger.Error("failed to encode services", "error", err)
	}
}

// ListLocations handles GET /api/locations requests.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(Locations()); err != nil {
		h.logger.Error("failed to encode locations", "error", err)
	}
}
