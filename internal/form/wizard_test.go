package form

import "testing"

func fillIntro(w *Wizard) {
	w.UpdateField(FieldName, "Jane Doe")
	w.UpdateField(FieldEmail, "jane@example.com")
}

func fillProject(w *Wizard) {
	w.UpdateField(FieldService, "weddings-and-elopements")
	w.UpdateField(FieldLocation, "johannesburg")
}

func fillDetails(w *Wizard) {
	w.UpdateField(FieldMessage, "We are planning a garden wedding for about eighty guests next spring.")
}

func TestNameValidationBoundary(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"", true},
		{"A", true},
		{"  A  ", true},
		{"Al", false},
		{"  Al  ", false},
		{"Jane Doe", false},
	}
	for _, tc := range cases {
		w := NewWizard(Prefill{})
		w.UpdateField(FieldName, tc.name)
		w.UpdateField(FieldEmail, "jane@example.com")
		w.ValidateStep(StepIntro)
		_, got := w.Errors()[FieldName]
		if got != tc.wantErr {
			t.Errorf("name %q: error = %v, want %v", tc.name, got, tc.wantErr)
		}
	}
}

func TestEmailValidation(t *testing.T) {
	cases := []struct {
		email   string
		wantErr bool
	}{
		{"a@b.co", false},
		{"jane@example.com", false},
		{"", true},
		{"plainaddress", true},
		{"missing@tld", true},
		{"two words@example.com", true},
		{"@example.com", true},
		{"jane@.com", false}, // permissive by design: pattern only rejects whitespace and missing parts
	}
	for _, tc := range cases {
		w := NewWizard(Prefill{})
		w.UpdateField(FieldName, "Jane Doe")
		w.UpdateField(FieldEmail, tc.email)
		w.ValidateStep(StepIntro)
		_, got := w.Errors()[FieldEmail]
		if got != tc.wantErr {
			t.Errorf("email %q: error = %v, want %v", tc.email, got, tc.wantErr)
		}
	}
}

func TestGoNextBlockedByValidation(t *testing.T) {
	w := NewWizard(Prefill{})

	if w.GoNext() {
		t.Fatal("expected GoNext to fail on empty intro")
	}
	if w.Step() != StepIntro {
		t.Errorf("expected cursor to stay on intro, got %s", w.Step())
	}
	if len(w.Errors()) == 0 {
		t.Error("expected errors to be populated")
	}
}

func TestGoNextReachesReviewInThreeSteps(t *testing.T) {
	w := NewWizard(Prefill{})
	fillIntro(w)
	fillProject(w)
	fillDetails(w)

	wantSteps := []Step{StepProject, StepDetails, StepReview}
	for i, want := range wantSteps {
		if !w.GoNext() {
			t.Fatalf("call %d: expected GoNext to advance, errors: %v", i+1, w.Errors())
		}
		if w.Step() != want {
			t.Fatalf("call %d: expected step %s, got %s", i+1, want, w.Step())
		}
		if len(w.Errors()) != 0 {
			t.Errorf("call %d: expected errors cleared after transition", i+1)
		}
	}

	// Clamped at review.
	w.GoNext()
	if w.Step() != StepReview {
		t.Errorf("expected cursor clamped at review, got %s", w.Step())
	}
}

func TestServiceMustBeInCatalog(t *testing.T) {
	w := NewWizard(Prefill{})
	w.UpdateField(FieldService, "drone-videography")
	w.UpdateField(FieldLocation, "johannesburg")

	if w.ValidateStep(StepProject) {
		t.Fatal("expected unknown service to fail project validation")
	}
	if _, ok := w.Errors()[FieldService]; !ok {
		t.Error("expected service error")
	}
}

func TestMessageMinimumLength(t *testing.T) {
	w := NewWizard(Prefill{})
	w.UpdateField(FieldMessage, "too short")
	if w.ValidateStep(StepDetails) {
		t.Fatal("expected short message to fail")
	}

	w.UpdateField(FieldMessage, "   this message is long enough once trimmed   ")
	if !w.ValidateStep(StepDetails) {
		t.Fatalf("expected trimmed 20+ char message to pass, errors: %v", w.Errors())
	}
}

func TestReviewStepHasNoNewConstraints(t *testing.T) {
	w := NewWizard(Prefill{})
	if !w.ValidateStep(StepReview) {
		t.Error("expected review validation to pass on an empty form")
	}
}

func TestGoPrevClampsAndClearsErrors(t *testing.T) {
	w := NewWizard(Prefill{})
	w.GoNext() // fails, populates errors

	w.GoPrev()
	if w.Step() != StepIntro {
		t.Errorf("expected clamp at intro, got %s", w.Step())
	}
	if len(w.Errors()) != 0 {
		t.Error("expected GoPrev to clear errors")
	}
}

func TestJumpToClearsErrors(t *testing.T) {
	w := NewWizard(Prefill{})
	fillIntro(w)
	fillProject(w)
	fillDetails(w)
	w.GoNext()
	w.GoNext()
	w.GoNext()
	w.UpdateField(FieldMessage, "short")
	w.ValidateStep(StepDetails)

	w.JumpTo(StepIntro)
	if w.Step() != StepIntro {
		t.Errorf("expected intro, got %s", w.Step())
	}
	if len(w.Errors()) != 0 {
		t.Error("expected JumpTo to clear errors")
	}
}

func TestResetRestoresPrefill(t *testing.T) {
	w := NewWizard(Prefill{Service: "maternity-portraits", Location: "Pretoria"})
	fillIntro(w)
	fillDetails(w)
	w.SetNewsletter(true)
	w.UpdateField(FieldService, "brand-campaigns")
	w.UpdateField(FieldLocation, "sandton")
	w.GoNext()
	w.status = StatusError

	w.Reset()

	if w.Step() != StepIntro {
		t.Errorf("expected reset to intro, got %s", w.Step())
	}
	if len(w.Errors()) != 0 {
		t.Error("expected reset to clear errors")
	}
	if w.Status() != StatusIdle {
		t.Errorf("expected idle status, got %s", w.Status())
	}
	st := w.State()
	if st.Service != "maternity-portraits" {
		t.Errorf("expected prefilled service restored, got %q", st.Service)
	}
	if st.Location != "pretoria" {
		t.Errorf("expected prefilled location restored, got %q", st.Location)
	}
	if st.Name != "" || st.Message != "" || st.Newsletter {
		t.Error("expected other fields back at defaults")
	}
	if st.ContactPreference != PreferenceEmail {
		t.Errorf("expected default contact preference, got %s", st.ContactPreference)
	}
}

func TestPrefillResolvesNamesAndDropsUnknowns(t *testing.T) {
	w := NewWizard(Prefill{Service: "Weddings & elopements", Location: "JOHANNESBURG"})
	st := w.State()
	if st.Service != "weddings-and-elopements" {
		t.Errorf("expected display name to resolve to slug, got %q", st.Service)
	}
	if st.Location != "johannesburg" {
		t.Errorf("expected location to resolve, got %q", st.Location)
	}

	w = NewWizard(Prefill{Service: "skydiving", Location: "durban"})
	st = w.State()
	if st.Service != "" || st.Location != "" {
		t.Errorf("expected unknown prefill dropped, got %q/%q", st.Service, st.Location)
	}
}

func TestContactPreferenceRejectsUnknownValues(t *testing.T) {
	w := NewWizard(Prefill{})
	w.UpdateField(FieldContactPreference, "whatsapp")
	if got := w.State().ContactPreference; got != PreferenceWhatsApp {
		t.Errorf("expected whatsapp, got %s", got)
	}

	w.UpdateField(FieldContactPreference, "carrier-pigeon")
	if got := w.State().ContactPreference; got != PreferenceWhatsApp {
		t.Errorf("expected unknown preference ignored, got %s", got)
	}
}
