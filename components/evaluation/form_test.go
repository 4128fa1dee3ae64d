package evaluation

import "testing"

func TestNewFormIsIdle(t *testing.T) {
	form := NewForm()
	if got := form.Status(); got != StatusIdle {
		t.Errorf("Status() = %q, want %q", got, StatusIdle)
	}
	if len(form.Errors()) != 0 {
		t.Errorf("Errors() = %v, want empty", form.Errors())
	}
}

func TestBlurStoresAndClearsError(t *testing.T) {
	form := NewForm()

	msg := form.Blur(FieldEmail, "nope")
	if msg != msgInvalidEmail {
		t.Fatalf("Blur = %q, want %q", msg, msgInvalidEmail)
	}
	if got := form.FieldError(FieldEmail); got != msgInvalidEmail {
		t.Errorf("FieldError = %q, want stored error", got)
	}

	if msg := form.Blur(FieldEmail, "ada@example.com"); msg != "" {
		t.Fatalf("Blur on valid value = %q, want \"\"", msg)
	}
	if got := form.FieldError(FieldEmail); got != "" {
		t.Errorf("FieldError after clearing blur = %q, want \"\"", got)
	}
	if _, ok := form.Errors()[FieldEmail]; ok {
		t.Error("cleared field still present in error map")
	}
}

func TestBeginSubmitRejectsWhileInFlight(t *testing.T) {
	form := NewForm()
	if !form.beginSubmit(validValues(), nil) {
		t.Fatal("first beginSubmit rejected")
	}
	if form.Status() != StatusSubmitting {
		t.Fatalf("Status() = %q, want %q", form.Status(), StatusSubmitting)
	}
	if form.beginSubmit(validValues(), nil) {
		t.Error("second beginSubmit accepted while submitting")
	}

	form.finishSubmit(StatusError)
	if !form.beginSubmit(validValues(), nil) {
		t.Error("beginSubmit rejected after terminal state")
	}
}

func TestFinishSubmitSuccessResetsForm(t *testing.T) {
	form := NewForm()
	form.Blur(FieldPhone, "letters")
	form.beginSubmit(validValues(), nil)

	form.finishSubmit(StatusSuccess)
	if form.Status() != StatusSuccess {
		t.Fatalf("Status() = %q, want %q", form.Status(), StatusSuccess)
	}
	if len(form.Values()) != 0 {
		t.Errorf("Values() = %v, want reset", form.Values())
	}
	if len(form.Errors()) != 0 {
		t.Errorf("Errors() = %v, want reset", form.Errors())
	}
}

func TestFinishSubmitErrorKeepsValues(t *testing.T) {
	form := NewForm()
	form.beginSubmit(validValues(), nil)

	form.finishSubmit(StatusError)
	if form.Status() != StatusError {
		t.Fatalf("Status() = %q, want %q", form.Status(), StatusError)
	}
	if got := form.Values()[FieldEmail]; got != "ada@example.com" {
		t.Errorf("Values()[email] = %q, want retained value", got)
	}
}
