package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/laxportraits/studio-leads/internal/leads"
)

type recordingEmitter struct {
	mu     sync.Mutex
	events []string
	meta   []map[string]string
}

func (e *recordingEmitter) Emit(event string, metadata map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	e.meta = append(e.meta, metadata)
}

func completedWizard() *Wizard {
	w := NewWizard(Prefill{})
	fillIntro(w)
	fillProject(w)
	fillDetails(w)
	w.UpdateField(FieldPhone, "+27 82 555 0101")
	w.GoNext()
	w.GoNext()
	w.GoNext()
	return w
}

func TestSubmitSuccess(t *testing.T) {
	var (
		requests int
		payload  leads.CreateLeadRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	emitter := &recordingEmitter{}
	c := NewClient(srv.URL, WithAnalytics(emitter))
	w := completedWizard()

	status := c.Submit(context.Background(), w, "https://laxportraits.com/contact")
	if status != StatusSuccess {
		t.Fatalf("expected success, got %s", status)
	}
	if w.Status() != StatusSuccess {
		t.Errorf("expected wizard status success, got %s", w.Status())
	}
	if requests != 1 {
		t.Fatalf("expected 1 request, got %d", requests)
	}

	if payload.Name != "Jane Doe" {
		t.Errorf("unexpected name %q", payload.Name)
	}
	if payload.Service != "weddings-and-elopements" {
		t.Errorf("unexpected service %q", payload.Service)
	}
	if payload.ServiceName != "Weddings & elopements" {
		t.Errorf("expected display name sent alongside slug, got %q", payload.ServiceName)
	}
	if payload.LocationName != "Johannesburg" {
		t.Errorf("unexpected location name %q", payload.LocationName)
	}
	if payload.Source != "website" {
		t.Errorf("unexpected source %q", payload.Source)
	}
	if payload.PageURL != "https://laxportraits.com/contact" {
		t.Errorf("unexpected page URL %q", payload.PageURL)
	}
	if payload.ContactPreference != "email" {
		t.Errorf("unexpected contact preference %q", payload.ContactPreference)
	}

	if len(emitter.events) != 1 || emitter.events[0] != "lead_submit" {
		t.Fatalf("expected one lead_submit event, got %v", emitter.events)
	}
	meta := emitter.meta[0]
	if meta["lead_context"] != "weddings-and-elopements" {
		t.Errorf("unexpected lead_context %q", meta["lead_context"])
	}
	if meta["lead_location"] != "johannesburg" {
		t.Errorf("unexpected lead_location %q", meta["lead_location"])
	}
}

func TestSubmitHoneypotDiscardsSilently(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	emitter := &recordingEmitter{}
	c := NewClient(srv.URL, WithAnalytics(emitter))
	w := completedWizard()
	w.UpdateField(FieldCompany, "Totally Real Inc")

	status := c.Submit(context.Background(), w, "")
	if status != StatusIdle {
		t.Errorf("expected status unchanged (idle), got %s", status)
	}
	if requests != 0 {
		t.Errorf("expected zero network calls, got %d", requests)
	}
	if len(emitter.events) != 0 {
		t.Errorf("expected no analytics, got %v", emitter.events)
	}
}

func TestSubmitRevalidatesBeforeSending(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	w := completedWizard()
	w.UpdateField(FieldMessage, "too short now")

	status := c.Submit(context.Background(), w, "")
	if status != StatusIdle {
		t.Errorf("expected status unchanged, got %s", status)
	}
	if w.Step() != StepDetails {
		t.Errorf("expected cursor returned to details, got %s", w.Step())
	}
	if _, ok := w.Errors()[FieldMessage]; !ok {
		t.Error("expected message error populated")
	}
	if requests != 0 {
		t.Errorf("expected zero network calls, got %d", requests)
	}
}

func TestSubmitServerErrorMapsToError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, `{"error":"Unable to record lead"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	emitter := &recordingEmitter{}
	c := NewClient(srv.URL, WithAnalytics(emitter))
	w := completedWizard()

	if status := c.Submit(context.Background(), w, ""); status != StatusError {
		t.Fatalf("expected error status, got %s", status)
	}
	if len(emitter.events) != 0 {
		t.Errorf("expected no analytics on failure, got %v", emitter.events)
	}
}

func TestSubmitNetworkFailureMapsToError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL)
	w := completedWizard()

	if status := c.Submit(context.Background(), w, ""); status != StatusError {
		t.Fatalf("expected error status, got %s", status)
	}
}

func TestSubmitRetryAfterErrorSucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(rw, `{"error":"Unable to record lead"}`, http.StatusInternalServerError)
			return
		}
		rw.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	w := completedWizard()

	if status := c.Submit(context.Background(), w, ""); status != StatusError {
		t.Fatalf("expected first attempt to fail, got %s", status)
	}
	if status := c.Submit(context.Background(), w, ""); status != StatusSuccess {
		t.Fatalf("expected retry to succeed, got %s", status)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestAnalyticsDefaultsWhenNoProjectContext(t *testing.T) {
	// Service and location are required by validation, so exercise the
	// defaults through the emitter path directly.
	emitter := &recordingEmitter{}
	c := NewClient("http://unused", WithAnalytics(emitter))
	c.emitAnalytics(State{})

	if len(emitter.meta) != 1 {
		t.Fatalf("expected one event, got %d", len(emitter.meta))
	}
	meta := emitter.meta[0]
	if meta["lead_context"] != "general" {
		t.Errorf("unexpected lead_context %q", meta["lead_context"])
	}
	if meta["lead_location"] != "unspecified" {
		t.Errorf("unexpected lead_location %q", meta["lead_location"])
	}
}
