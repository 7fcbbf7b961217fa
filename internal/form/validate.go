package form

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/laxportraits/studio-leads/internal/catalog"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgName     = "Please share your full name."
	msgEmail    = "Enter a valid email address."
	msgService  = "Select the service you are interested in."
	msgLocation = "Choose the primary location."
	msgMessage  = "Tell us a little more so we can prep a tailored response (min 20 characters)."
)

// ValidateStep checks the fields belonging to step, replacing the error map
// with whatever it finds. Reports whether the step is clean.
func (w *Wizard) ValidateStep(step Step) bool {
	w.errors = w.stepErrors(step)
	return len(w.errors) == 0
}

func (w *Wizard) stepErrors(step Step) map[Field]string {
	errs := map[Field]string{}
	switch step {
	case StepIntro:
		if utf8.RuneCountInString(strings.TrimSpace(w.state.Name)) < 2 {
			errs[FieldName] = msgName
		}
		if !emailRE.MatchString(w.state.Email) {
			errs[FieldEmail] = msgEmail
		}
	case StepProject:
		if w.state.Service == "" || !catalog.KnownService(w.state.Service) {
			errs[FieldService] = msgService
		}
		if w.state.Location == "" {
			errs[FieldLocation] = msgLocation
		}
	case StepDetails:
		if utf8.RuneCountInString(strings.TrimSpace(w.state.Message)) < 20 {
			errs[FieldMessage] = msgMessage
		}
	case StepReview:
		// Review imposes no new constraints; earlier steps were already gated.
	}
	return errs
}

// validateForSubmit re-runs every step's rules as the final gate before the
// network call.
func (w *Wizard) validateForSubmit() bool {
	errs := map[Field]string{}
	for _, step := range []Step{StepIntro, StepProject, StepDetails} {
		for f, msg := range w.stepErrors(step) {
			errs[f] = msg
		}
	}
	w.errors = errs
	return len(errs) == 0
}
