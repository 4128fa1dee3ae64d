package evaluation

import (
	"net/http"

	"github.com/lexport/go-sitekit/pkg/web"
)

// Component is a small wrapper around the evaluation-form handlers, their
// configuration, and routing helpers.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// PageHandler returns the server-rendered form page handler.
func (c *Component) PageHandler() http.Handler {
	if c == nil {
		return PageHandler()
	}
	return PageHandlerWithOptions(c.opts)
}

// SubmitHandler returns the submission endpoint handler.
func (c *Component) SubmitHandler() http.Handler {
	if c == nil {
		return SubmitHandler()
	}
	return SubmitHandlerWithOptions(c.opts)
}

// ValidateHandler returns the per-field validation handler.
func (c *Component) ValidateHandler() http.Handler {
	if c == nil {
		return ValidateHandler()
	}
	return ValidateHandlerWithOptions(c.opts)
}

// Submitter returns a submitter bound to the component configuration.
func (c *Component) Submitter() *Submitter {
	if c == nil {
		return NewSubmitter()
	}
	return SubmitterWithOptions(c.opts)
}

// RegisterRoutes registers the component handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux web.Mux, basePath string) ([]string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
