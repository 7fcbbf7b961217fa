package leads

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/laxportraits/studio-leads/internal/observability/metrics"
	"github.com/laxportraits/studio-leads/pkg/logging"
)

// Appender appends a single lead row to the external sink.
type Appender interface {
	Append(ctx context.Context, rec Record) error
}

// Notifier sends a best-effort notification about a recorded lead. Failures
// are logged and never surfaced to the submitter.
type Notifier interface {
	NotifyNewLead(ctx context.Context, rec Record) error
}

// Handler handles HTTP requests for lead intake.
type Handler struct {
	sink     Appender
	notifier Notifier
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
	source   string
	now      func() time.Time
}

// NewHandler creates a lead intake handler. sink may be nil when the sheet
// credentials are missing, in which case every submission fails closed with a
// generic error. notifier and m are optional.
func NewHandler(sink Appender, notifier Notifier, m *metrics.LeadMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		sink:     sink,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		source:   "Website",
		now:      time.Now,
	}
}

// SetSource overrides the fallback source tag written for payloads that
// arrive without one.
func (h *Handler) SetSource(source string) {
	if source != "" {
		h.source = source
	}
}

// CreateLead handles POST /api/create-lead requests. Any other method gets a
// 405 with an Allow header. Error responses carry generic messages only;
// detail stays in the server logs.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respondJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	payload := decodePayload(r.Body)

	if err := payload.Validate(); err != nil {
		h.metrics.ObserveSubmission("rejected")
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return
	}

	if h.sink == nil {
		h.logger.Error("lead intake failed", "error", ErrSinkUnavailable)
		h.metrics.ObserveSubmission("misconfigured")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to record lead"})
		return
	}

	rec := NewRecord(payload, h.now(), r.Referer(), clientIP(r), h.source)

	start := time.Now()
	if err := h.sink.Append(r.Context(), rec); err != nil {
		h.logger.Error("lead submission failed", "error", err, "service", rec.Service)
		h.metrics.ObserveSubmission("sink_error")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Unable to record lead"})
		return
	}
	h.metrics.ObserveAppendLatency(time.Since(start).Seconds())
	h.metrics.ObserveSubmission("accepted")

	h.logger.Info("lead recorded", "service", rec.Service, "location", rec.Location, "source", rec.Source)

	if h.notifier != nil {
		if err := h.notifier.NotifyNewLead(r.Context(), rec); err != nil {
			h.logger.Warn("new lead notification failed", "error", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// decodePayload parses the request body defensively. Malformed JSON yields an
// empty payload so the required-field gate fires instead of a parse error; a
// double-encoded JSON string body is unwrapped once.
func decodePayload(body io.Reader) *CreateLeadRequest {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil {
		return &CreateLeadRequest{}
	}

	var p CreateLeadRequest
	if err := json.Unmarshal(raw, &p); err == nil {
		return &p
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &p); err == nil {
			return &p
		}
	}

	return &CreateLeadRequest{}
}

// clientIP prefers the proxy-forwarded address over the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
