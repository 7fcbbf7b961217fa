package form

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/laxportraits/studio-leads/internal/catalog"
	"github.com/laxportraits/studio-leads/internal/leads"
	"github.com/laxportraits/studio-leads/pkg/logging"
)

// FallbackContact is shown to the visitor when a submission fails. There is
// no automatic retry; they resubmit manually or reach out directly.
const FallbackContact = "Something went wrong while sending your message. Please email hello@laxportraits.com and we'll respond as soon as possible."

// AnalyticsEmitter receives a best-effort event after a successful
// submission. A nil emitter is fine; emission never blocks or fails the
// submission itself.
type AnalyticsEmitter interface {
	Emit(event string, metadata map[string]string)
}

// Client submits a completed wizard to the lead intake endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	analytics  AnalyticsEmitter
	source     string
	logger     *logging.Logger
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithAnalytics sets the analytics emitter.
func WithAnalytics(emitter AnalyticsEmitter) ClientOption {
	return func(c *Client) {
		c.analytics = emitter
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSource overrides the source tag sent with every submission.
func WithSource(source string) ClientOption {
	return func(c *Client) {
		c.source = source
	}
}

// NewClient creates a submission client pointed at the lead intake endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		source: "website",
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit sends the wizard's form to the intake endpoint and returns the
// resulting status. A non-empty decoy field discards the submission silently:
// no network call, no status change. A failed final validation returns the
// cursor to the details step with errors populated. Network failures and
// non-2xx responses both map to StatusError; there is no automatic retry, a
// later call re-runs the whole sequence.
func (c *Client) Submit(ctx context.Context, w *Wizard, pageURL string) SubmissionStatus {
	if w.honeypot != "" {
		return w.status
	}

	if !w.validateForSubmit() {
		w.step = StepDetails
		return w.status
	}

	w.status = StatusSubmitting

	body, err := json.Marshal(c.buildPayload(w.state, pageURL))
	if err != nil {
		c.logger.Error("failed to encode lead payload", "error", err)
		w.status = StatusError
		return w.status
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build lead request", "error", err)
		w.status = StatusError
		return w.status
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("lead submission failed", "error", err)
		w.status = StatusError
		return w.status
	}
	defer resp.Body.Close()
	// The response body is irrelevant on success and untrusted on failure;
	// drain a little of it so the connection can be reused.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("lead endpoint rejected submission", "status", resp.StatusCode)
		w.status = StatusError
		return w.status
	}

	w.status = StatusSuccess
	c.emitAnalytics(w.state)
	return w.status
}

func (c *Client) buildPayload(st State, pageURL string) leads.CreateLeadRequest {
	payload := leads.CreateLeadRequest{
		Name:              st.Name,
		Email:             st.Email,
		Phone:             st.Phone,
		Service:           st.Service,
		Location:          st.Location,
		EventDate:         st.EventDate,
		Budget:            st.Budget,
		HearAbout:         st.HearAbout,
		ContactPreference: string(st.ContactPreference),
		Message:           st.Message,
		Newsletter:        st.Newsletter,
		Source:            c.source,
		PageURL:           pageURL,
	}
	if svc, ok := catalog.ServiceBySlug(st.Service); ok {
		payload.ServiceName = svc.Name
	}
	if loc, ok := catalog.LocationBySlug(st.Location); ok {
		payload.LocationName = loc.Name
	}
	return payload
}

func (c *Client) emitAnalytics(st State) {
	if c.analytics == nil {
		return
	}
	leadContext := st.Service
	if leadContext == "" {
		leadContext = "general"
	}
	leadLocation := st.Location
	if leadLocation == "" {
		leadLocation = "unspecified"
	}
	c.analytics.Emit("lead_submit", map[string]string{
		"lead_context":  leadContext,
		"lead_location": leadLocation,
	})
}
