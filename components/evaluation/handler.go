package evaluation

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/lexport/go-sitekit/internal/render"
	"github.com/lexport/go-sitekit/pkg/model"
	"github.com/lexport/go-sitekit/pkg/notify"
	"github.com/lexport/go-sitekit/pkg/web"
)

type submitResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type validateRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// SubmitHandler builds the submission endpoint with default options plus any
// overrides.
func SubmitHandler(fns ...OptionFn) http.Handler {
	return SubmitHandlerWithOptions(NewOptions(fns...))
}

// SubmitHandlerWithOptions accepts the posted form (JSON or form-encoded),
// drives the submission protocol, and reports the outcome. JSON clients get
// JSON envelopes; plain form posts get HTML back, with a blocked submission
// re-rendering the page so each invalid control carries its error chrome.
// Each request gets a fresh form instance; the component-level rate limiter is
// the shared throttle across visitors.
func SubmitHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	submitter := SubmitterWithOptions(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowPost(w, r, opts.Guard) {
			return
		}
		if opts.Limiter != nil && !opts.Limiter.Allow() {
			web.WriteJSON(w, http.StatusTooManyRequests, submitResponse{
				Success: false,
				Message: "Too many submissions; please try again shortly.",
			})
			return
		}

		values, wantsHTML, err := readValues(r)
		if err != nil {
			web.WriteJSON(w, http.StatusBadRequest, submitResponse{
				Success: false,
				Message: "The submitted form could not be read.",
			})
			return
		}

		form := NewForm()
		err = submitter.Submit(r.Context(), form, values)

		var validationErr *ValidationError
		switch {
		case err == nil:
			if wantsHTML {
				http.Redirect(w, r, opts.PageRoutePath, http.StatusSeeOther)
				return
			}
			web.WriteJSON(w, http.StatusOK, submitResponse{
				Success: true,
				Message: opts.SuccessMessage,
			})
		case errors.As(err, &validationErr):
			if wantsHTML {
				renderFormPage(w, r, opts, http.StatusUnprocessableEntity, values, validationErr.Fields)
				return
			}
			web.WriteJSON(w, http.StatusUnprocessableEntity, submitResponse{
				Success: false,
				Message: aggregateValidationMessage,
				Errors:  validationErr.Fields,
			})
		case errors.Is(err, ErrSubmitInFlight):
			web.WriteJSON(w, http.StatusConflict, submitResponse{
				Success: false,
				Message: "A submission is already in progress.",
			})
		default:
			if wantsHTML {
				renderFormPage(w, r, opts, http.StatusBadGateway, values, nil)
				return
			}
			web.WriteJSON(w, http.StatusBadGateway, submitResponse{
				Success: false,
				Message: submitter.failureMessage(),
			})
		}
	})
}

// ValidateHandler builds the per-field validation endpoint, the server-side
// counterpart of on-blur checks.
func ValidateHandler(fns ...OptionFn) http.Handler {
	return ValidateHandlerWithOptions(NewOptions(fns...))
}

func ValidateHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowPost(w, r, opts.Guard) {
			return
		}

		var req validateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Field) == "" {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		msg := ValidateField(req.Field, req.Value)
		web.WriteJSON(w, http.StatusOK, validateResponse{Valid: msg == "", Error: msg})
	})
}

// PageHandler builds the server-rendered form page.
func PageHandler(fns ...OptionFn) http.Handler {
	return PageHandlerWithOptions(NewOptions(fns...))
}

// PageHandlerWithOptions renders the evaluation form from the intake model:
// one control per schema field with the ARIA wiring assistive technology
// needs, plus any active notifications.
func PageHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				web.WriteGuardError(w, err)
				return
			}
		}

		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			return
		}
		renderFormPage(w, r, opts, http.StatusOK, nil, nil)
	})
}

var (
	formEngineOnce sync.Once
	formEngine     render.TemplateRenderer
	formEngineErr  error
)

func pageEngine() (render.TemplateRenderer, error) {
	formEngineOnce.Do(func() {
		formEngine, formEngineErr = render.New(render.WithFS(templateFiles))
	})
	return formEngine, formEngineErr
}

// renderFormPage writes the form page with the given values and per-field
// errors, so a blocked plain-form submission re-renders with each invalid
// control marked up for assistive technology.
func renderFormPage(w http.ResponseWriter, r *http.Request, opts Options, status int, values, fieldErrors map[string]string) {
	form, err := Model(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	tmpl, err := pageEngine()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"form":          formContext(form, opts, values, fieldErrors),
		"theme":         render.ThemeContext(opts.Theme),
		"notifications": activeNotifications(opts.Notifier),
	}

	rendered, err := tmpl.RenderTemplate("templates/form", data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, rendered)
}

func formContext(form model.FormModel, opts Options, values, fieldErrors map[string]string) map[string]any {
	fields := make([]map[string]any, 0, len(form.Fields))
	for _, field := range form.Fields {
		fields = append(fields, map[string]any{
			"name":     field.Name,
			"label":    field.Label,
			"type":     inputType(field),
			"widget":   field.Widget,
			"required": field.Required,
			"value":    values[field.Name],
			"error":    fieldErrors[field.Name],
		})
	}
	return map[string]any{
		"summary":     form.Summary,
		"description": form.Description,
		"action":      opts.SubmitRoutePath,
		"method":      form.Method,
		"fields":      fields,
	}
}

func inputType(field model.Field) string {
	switch field.Format {
	case "email":
		return "email"
	case "tel":
		return "tel"
	default:
		return "text"
	}
}

func activeNotifications(notifier notify.Notifier) []notify.Notification {
	type lister interface {
		Active() []notify.Notification
	}
	if center, ok := notifier.(lister); ok {
		return center.Active()
	}
	return nil
}

// readValues decodes the posted field values. The second return reports
// whether the client posted a plain form, and so should be answered with HTML
// rather than a JSON envelope.
func readValues(r *http.Request) (map[string]string, bool, error) {
	contentType := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "application/json" {
		var decoded map[string]string
		if err := json.NewDecoder(r.Body).Decode(&decoded); err != nil {
			return nil, false, err
		}
		return decoded, false, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, true, err
	}
	values := make(map[string]string, len(FieldNames()))
	for _, name := range FieldNames() {
		values[name] = r.PostFormValue(name)
	}
	return values, true, nil
}

func allowPost(w http.ResponseWriter, r *http.Request, guard GuardFunc) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if guard != nil {
		if err := guard(r); err != nil {
			web.WriteGuardError(w, err)
			return false
		}
	}
	return true
}
