package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/lexport/go-sitekit/pkg/feedback"
	"github.com/lexport/go-sitekit/pkg/notify"
)

const aggregateValidationMessage = "Please fill in all required fields correctly."

var (
	// ErrSubmitInFlight reports a submit attempted while another submission
	// on the same form is still awaited.
	ErrSubmitInFlight = errors.New("evaluation: submission already in flight")

	// ErrIntakeUnavailable wraps every upstream failure: transport errors,
	// non-2xx statuses, malformed bodies, and success=false responses. All
	// are surfaced to the user identically.
	ErrIntakeUnavailable = errors.New("evaluation: intake request failed")
)

// ValidationError carries the per-field messages of a blocked submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "evaluation: validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "evaluation: validation failed: " + strings.Join(names, ", ")
}

// Submitter drives the submission lifecycle for a form against the intake
// endpoint using the component configuration.
type Submitter struct {
	opts Options
}

// NewSubmitter constructs a Submitter from options.
func NewSubmitter(fns ...OptionFn) *Submitter {
	return &Submitter{opts: NewOptions(fns...)}
}

// SubmitterWithOptions wraps a pre-built Options value.
func SubmitterWithOptions(opts Options) *Submitter {
	return &Submitter{opts: NewOptions(func(o *Options) { *o = opts })}
}

// Submit runs the full protocol: bulk validation, the empty-field check, the
// upstream POST, and the outcome side effects (cues, notifications, reset).
// The submitting state is always exited, success or failure.
func (s *Submitter) Submit(ctx context.Context, form *Form, values map[string]string) error {
	if form.Status() == StatusSubmitting {
		return ErrSubmitInFlight
	}

	// The error set is computed locally and checked directly, not read back
	// from the form state it is about to update; a freshly introduced error
	// can therefore never slip through on its own submit.
	errs, anyEmpty := ValidateAll(values)

	if anyEmpty || len(errs) > 0 {
		form.applyValidation(values, errs)
		s.opts.Cues.Emit(feedback.CueError)
		s.opts.Notifier.Show(aggregateValidationMessage, notify.KindError)
		return &ValidationError{Fields: errs}
	}

	if !form.beginSubmit(values, errs) {
		return ErrSubmitInFlight
	}

	terminal := StatusError
	defer func() { form.finishSubmit(terminal) }()

	if err := s.post(ctx, payloadFromValues(values)); err != nil {
		s.opts.Cues.Emit(feedback.CueError)
		s.opts.Notifier.Show(s.failureMessage(), notify.KindError)
		return err
	}

	terminal = StatusSuccess
	s.opts.Cues.Emit(feedback.CueSuccess)
	s.opts.Notifier.Show(s.opts.SuccessMessage, notify.KindSuccess)
	return nil
}

func (s *Submitter) failureMessage() string {
	return fmt.Sprintf("%s Please try again, or call us at %s.", s.opts.FailureMessage, s.opts.FallbackPhone)
}

type intakeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Submitter) post(ctx context.Context, payload intakePayload) error {
	if strings.TrimSpace(s.opts.IntakeEndpoint) == "" {
		return errors.New("evaluation: intake endpoint is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("evaluation: encode intake payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.IntakeEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("evaluation: build intake request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.opts.HTTPClient.Do(req)
	if err != nil {
		s.opts.Logf("evaluation: intake transport error: %v", err)
		return fmt.Errorf("%w: %v", ErrIntakeUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		s.opts.Logf("evaluation: intake returned status %d", res.StatusCode)
		return fmt.Errorf("%w: status %d", ErrIntakeUnavailable, res.StatusCode)
	}

	var decoded intakeResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		s.opts.Logf("evaluation: intake response malformed: %v", err)
		return fmt.Errorf("%w: malformed response", ErrIntakeUnavailable)
	}
	if !decoded.Success {
		// The upstream error detail is for operators, never for visitors.
		s.opts.Logf("evaluation: intake rejected submission: %s", decoded.Error)
		return fmt.Errorf("%w: rejected", ErrIntakeUnavailable)
	}
	return nil
}
