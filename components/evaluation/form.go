package evaluation

import "sync"

// Status is the submission lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Form is the per-mount state of the evaluation form: current values, the
// per-field error map, and the submission status. A field is valid iff it has
// no entry in the error map. Status changes only through the submit
// lifecycle; errors change on blur and on submit.
type Form struct {
	mu     sync.Mutex
	values map[string]string
	errors map[string]string
	status Status
}

// NewForm returns a fresh form: no values, no errors, idle.
func NewForm() *Form {
	return &Form{
		values: make(map[string]string),
		errors: make(map[string]string),
		status: StatusIdle,
	}
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Values returns a copy of the current field values.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.values)
}

// Errors returns a copy of the current field error map.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.errors)
}

// FieldError returns the current error for a field, "" when valid.
func (f *Form) FieldError(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors[name]
}

// Blur validates a single field, as the browser does when focus leaves an
// input, and stores or clears its error.
func (f *Form) Blur(name, value string) string {
	msg := ValidateField(name, value)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setErrorLocked(name, msg)
	return msg
}

// setErrorLocked applies the store-or-clear convention: an empty message
// removes the entry rather than storing "".
func (f *Form) setErrorLocked(name, msg string) {
	if msg == "" {
		delete(f.errors, name)
		return
	}
	f.errors[name] = msg
}

// beginSubmit moves the form into submitting unless a submission is already
// in flight. This is the form's only concurrency guard: while one submission
// is awaited, further attempts are rejected without touching the network.
func (f *Form) beginSubmit(values, errs map[string]string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return false
	}
	f.values = copyMap(values)
	for _, name := range FieldNames() {
		f.setErrorLocked(name, errs[name])
	}
	f.status = StatusSubmitting
	return true
}

// finishSubmit exits the submitting state. Terminal states always permit a
// fresh submission attempt.
func (f *Form) finishSubmit(terminal Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = terminal
	if terminal == StatusSuccess {
		f.values = make(map[string]string)
		f.errors = make(map[string]string)
	}
}

// applyValidation records a blocked submit attempt: errors stored, values
// kept, status unchanged except that it must not be submitting.
func (f *Form) applyValidation(values, errs map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = copyMap(values)
	for _, name := range FieldNames() {
		f.setErrorLocked(name, errs[name])
	}
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
