// Package form implements the multi-step enquiry wizard: its field state,
// step cursor, validation rules, and the client that submits a completed
// form to the lead intake endpoint.
package form

// ContactPreference is the channel the visitor wants to be reached on.
type ContactPreference string

const (
	PreferenceEmail    ContactPreference = "email"
	PreferencePhone    ContactPreference = "phone"
	PreferenceWhatsApp ContactPreference = "whatsapp"
)

// State holds the wizard's field values. It is owned by a single Wizard for
// its lifetime and mutated only through the wizard's operations.
type State struct {
	Name              string
	Email             string
	Phone             string
	Service           string // catalog service slug, or empty
	Location          string // catalog location slug, or empty
	EventDate         string // ISO date, or empty
	Budget            string
	HearAbout         string
	ContactPreference ContactPreference
	Message           string
	Newsletter        bool
}

func defaultState() State {
	return State{ContactPreference: PreferenceEmail}
}

// SubmissionStatus tracks the outcome of a submission attempt. Within one
// attempt it only moves forward (idle → submitting → success|error); a new
// attempt restarts from submitting.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)
