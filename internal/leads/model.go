package leads

import (
	"regexp"
	"strings"
	"time"
)

// CreateLeadRequest is the wire payload accepted by the intake endpoint.
// Only name, email, service, and message are required; every other field is
// optional and defaults to the empty string.
type CreateLeadRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Service           string `json:"service"`
	ServiceName       string `json:"serviceName,omitempty"`
	Location          string `json:"location,omitempty"`
	LocationName      string `json:"locationName,omitempty"`
	EventDate         string `json:"eventDate,omitempty"`
	Budget            string `json:"budget,omitempty"`
	HearAbout         string `json:"hearAbout,omitempty"`
	ContactPreference string `json:"contactPreference,omitempty"`
	Message           string `json:"message"`
	Newsletter        bool   `json:"newsletter,omitempty"`
	Source            string `json:"source,omitempty"`
	PageURL           string `json:"pageUrl,omitempty"`
}

// Validate checks the required-field gate. Deliberately coarse: callers get
// one generic error, never per-field diagnostics.
func (r *CreateLeadRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Service == "" || r.Message == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

// Record is the normalized row appended to the sheet. The sink's column
// layout is fixed at exactly these 15 values, in this order; optional values
// are empty strings rather than absent so the shape never drifts.
type Record struct {
	Timestamp         string
	Name              string
	Email             string
	Phone             string
	Service           string
	Location          string
	EventDate         string
	Budget            string
	HearAbout         string
	ContactPreference string
	Newsletter        string
	Message           string
	Source            string
	PageURL           string
	ClientIP          string
}

// Row returns the record as the ordered value tuple the sink expects.
func (r Record) Row() []any {
	return []any{
		r.Timestamp,
		r.Name,
		r.Email,
		r.Phone,
		r.Service,
		r.Location,
		r.EventDate,
		r.Budget,
		r.HearAbout,
		r.ContactPreference,
		r.Newsletter,
		r.Message,
		r.Source,
		r.PageURL,
		r.ClientIP,
	}
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// collapseWhitespace squashes runs of whitespace (including newlines) to
// single spaces and trims the result.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// NewRecord normalizes a validated payload into the fixed row shape.
// Human-readable labels win over raw slugs when the caller supplied them, the
// page URL falls back to the referrer, and the source tag falls back to
// defaultSource.
func NewRecord(p *CreateLeadRequest, now time.Time, referer, clientIP, defaultSource string) Record {
	service := p.ServiceName
	if service == "" {
		service = p.Service
	}

	location := p.LocationName
	if location == "" {
		location = p.Location
	}
	if location == "" {
		location = "Unspecified"
	}

	preference := p.ContactPreference
	if preference == "" {
		preference = "email"
	}

	newsletter := "No"
	if p.Newsletter {
		newsletter = "Yes"
	}

	pageURL := p.PageURL
	if pageURL == "" {
		pageURL = referer
	}

	source := p.Source
	if source == "" {
		source = defaultSource
	}

	return Record{
		Timestamp:         now.UTC().Format(time.RFC3339),
		Name:              p.Name,
		Email:             p.Email,
		Phone:             p.Phone,
		Service:           service,
		Location:          location,
		EventDate:         p.EventDate,
		Budget:            p.Budget,
		HearAbout:         p.HearAbout,
		ContactPreference: preference,
		Newsletter:        newsletter,
		Message:           collapseWhitespace(p.Message),
		Source:            source,
		PageURL:           pageURL,
		ClientIP:          clientIP,
	}
}
