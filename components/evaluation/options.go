package evaluation

import (
	"net/http"

	theme "github.com/goliatone/go-theme"
	"golang.org/x/time/rate"

	"github.com/lexport/go-sitekit/pkg/feedback"
	"github.com/lexport/go-sitekit/pkg/notify"
)

// GuardFunc gates requests before the handler runs. Returning an error
// rejects the request; errors implementing web.HTTPError choose the status.
type GuardFunc func(r *http.Request) error

const (
	// DefaultFallbackPhone is the number failure notifications offer when a
	// submission cannot be delivered.
	DefaultFallbackPhone = "+1 (202) 555-0137"

	defaultSuccessMessage = "Thank you! Your case evaluation request has been received. Our team will contact you within one business day."
	defaultFailureMessage = "We could not submit your request."
)

type Options struct {
	// IntakeEndpoint is the URL submissions are forwarded to. Submissions
	// fail until it is configured.
	IntakeEndpoint string

	PageRoutePath     string
	SubmitRoutePath   string
	ValidateRoutePath string

	FallbackPhone  string
	SuccessMessage string
	FailureMessage string

	HTTPClient *http.Client
	Notifier   notify.Notifier
	Cues       feedback.Port
	Limiter    *rate.Limiter
	Guard      GuardFunc
	Theme      *theme.RendererConfig

	// Logf receives operator-facing diagnostics (upstream rejections,
	// transport errors). Defaults to discard.
	Logf func(format string, args ...any)
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PageRoutePath:     "/evaluation",
		SubmitRoutePath:   "/api/evaluation",
		ValidateRoutePath: "/api/evaluation/validate",
		FallbackPhone:     DefaultFallbackPhone,
		SuccessMessage:    defaultSuccessMessage,
		FailureMessage:    defaultFailureMessage,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	defaults := DefaultOptions()
	if opts.PageRoutePath == "" {
		opts.PageRoutePath = defaults.PageRoutePath
	}
	if opts.SubmitRoutePath == "" {
		opts.SubmitRoutePath = defaults.SubmitRoutePath
	}
	if opts.ValidateRoutePath == "" {
		opts.ValidateRoutePath = defaults.ValidateRoutePath
	}
	if opts.FallbackPhone == "" {
		opts.FallbackPhone = defaults.FallbackPhone
	}
	if opts.SuccessMessage == "" {
		opts.SuccessMessage = defaults.SuccessMessage
	}
	if opts.FailureMessage == "" {
		opts.FailureMessage = defaults.FailureMessage
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.NewCenter()
	}
	if opts.Cues == nil {
		opts.Cues = feedback.Noop()
	}
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}
	return opts
}

// WithIntakeEndpoint sets the upstream intake URL.
func WithIntakeEndpoint(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.IntakeEndpoint = url
	}
}

// WithHTTPClient overrides the HTTP client used for intake requests.
func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

// WithNotifier injects the notification center submission outcomes surface
// through.
func WithNotifier(notifier notify.Notifier) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Notifier = notifier
	}
}

// WithCues injects the feedback port for success/error cues.
func WithCues(port feedback.Port) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Cues = port
	}
}

// WithFallbackPhone sets the number offered when a submission fails.
func WithFallbackPhone(phone string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FallbackPhone = phone
	}
}

// WithSuccessMessage overrides the confirmation toast text.
func WithSuccessMessage(message string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SuccessMessage = message
	}
}

// WithRateLimit throttles the submit endpoint to r submissions per second
// with the given burst.
func WithRateLimit(r rate.Limit, burst int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Limiter = rate.NewLimiter(r, burst)
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithTheme supplies resolved theme tokens for the rendered page.
func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

// WithLogf injects the diagnostic log function.
func WithLogf(logf func(format string, args ...any)) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logf = logf
	}
}

func WithPageRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PageRoutePath = path
	}
}

func WithSubmitRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SubmitRoutePath = path
	}
}

func WithValidateRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValidateRoutePath = path
	}
}
