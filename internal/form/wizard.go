package form

import "github.com/laxportraits/studio-leads/internal/catalog"

// Step identifies one screen of the wizard. Steps are strictly ordered with
// no branching or skipping.
type Step int

const (
	StepIntro Step = iota
	StepProject
	StepDetails
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepProject:
		return "project"
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// Field names a form field for updates and error reporting. FieldCompany is
// the hidden decoy: real visitors never fill it, so a non-empty value marks
// the submission as automated.
type Field string

const (
	FieldName              Field = "name"
	FieldEmail             Field = "email"
	FieldPhone             Field = "phone"
	FieldService           Field = "service"
	FieldLocation          Field = "location"
	FieldEventDate         Field = "eventDate"
	FieldBudget            Field = "budget"
	FieldHearAbout         Field = "hearAbout"
	FieldContactPreference Field = "contactPreference"
	FieldMessage           Field = "message"
	FieldCompany           Field = "company"
)

// Prefill seeds the wizard with a service and location, as when the form is
// opened from a service or location page. Values may be slugs or display
// names; unknown values are dropped.
type Prefill struct {
	Service  string
	Location string
}

// Wizard drives the four-step enquiry form. It is not safe for concurrent
// use; each form instance owns exactly one wizard.
type Wizard struct {
	state    State
	step     Step
	errors   map[Field]string
	status   SubmissionStatus
	honeypot string

	prefillService  string
	prefillLocation string
}

// NewWizard creates a wizard on the intro step with default field values.
func NewWizard(prefill Prefill) *Wizard {
	w := &Wizard{
		step:            StepIntro,
		errors:          map[Field]string{},
		status:          StatusIdle,
		prefillService:  catalog.ResolveService(prefill.Service),
		prefillLocation: catalog.ResolveLocation(prefill.Location),
	}
	w.state = defaultState()
	w.state.Service = w.prefillService
	w.state.Location = w.prefillLocation
	return w
}

// UpdateField mutates one field unconditionally. No validation runs; errors
// surface on the next step transition or submit.
func (w *Wizard) UpdateField(field Field, value string) {
	switch field {
	case FieldName:
		w.state.Name = value
	case FieldEmail:
		w.state.Email = value
	case FieldPhone:
		w.state.Phone = value
	case FieldService:
		w.state.Service = value
	case FieldLocation:
		w.state.Location = value
	case FieldEventDate:
		w.state.EventDate = value
	case FieldBudget:
		w.state.Budget = value
	case FieldHearAbout:
		w.state.HearAbout = value
	case FieldContactPreference:
		switch ContactPreference(value) {
		case PreferenceEmail, PreferencePhone, PreferenceWhatsApp:
			w.state.ContactPreference = ContactPreference(value)
		}
	case FieldMessage:
		w.state.Message = value
	case FieldCompany:
		w.honeypot = value
	}
}

// SetNewsletter toggles the newsletter opt-in.
func (w *Wizard) SetNewsletter(subscribed bool) {
	w.state.Newsletter = subscribed
}

// GoNext validates the current step. On failure the cursor stays put with
// the error map populated; on success it advances one step, clamped at
// review, and clears errors. Reports whether the cursor advanced.
func (w *Wizard) GoNext() bool {
	if !w.ValidateStep(w.step) {
		return false
	}
	next := w.step + 1
	if next > StepReview {
		next = StepReview
	}
	w.step = next
	w.clearErrors()
	return true
}

// GoPrev moves one step back, clamped at intro. No validation runs; errors
// are cleared.
func (w *Wizard) GoPrev() {
	if w.step > StepIntro {
		w.step--
	}
	w.clearErrors()
}

// JumpTo moves the cursor unconditionally, clearing errors. Used by the
// review step's edit affordances.
func (w *Wizard) JumpTo(step Step) {
	if step < StepIntro {
		step = StepIntro
	}
	if step > StepReview {
		step = StepReview
	}
	w.step = step
	w.clearErrors()
}

// Reset restores the wizard to its initial state: default field values with
// any prefilled service/location reapplied, cursor on intro, no errors,
// status idle.
func (w *Wizard) Reset() {
	w.state = defaultState()
	w.state.Service = w.prefillService
	w.state.Location = w.prefillLocation
	w.step = StepIntro
	w.clearErrors()
	w.status = StatusIdle
	w.honeypot = ""
}

func (w *Wizard) clearErrors() {
	w.errors = map[Field]string{}
}

// Step returns the current cursor position.
func (w *Wizard) Step() Step {
	return w.step
}

// State returns a copy of the current field values.
func (w *Wizard) State() State {
	return w.state
}

// Status returns the submission status of the last attempt.
func (w *Wizard) Status() SubmissionStatus {
	return w.status
}

// Errors returns a copy of the current per-field error map.
func (w *Wizard) Errors() map[Field]string {
	out := make(map[Field]string, len(w.errors))
	for f, msg := range w.errors {
		out[f] = msg
	}
	return out
}
