package practices

import (
	"net/http"

	"github.com/lexport/go-sitekit/pkg/web"
)

// Component is a small wrapper around the practice-areas handlers, their
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

// PageHandler returns the server-rendered accordion page handler.
func (c *Component) PageHandler() http.Handler {
	if c == nil {
		return PageHandler()
	}
	return PageHandlerWithOptions(c.opts)
}

// SearchHandler returns the JSON filter handler.
func (c *Component) SearchHandler() http.Handler {
	if c == nil {
		return SearchHandler()
	}
	return SearchHandlerWithOptions(c.opts)
}

// ResolveHandler returns the deep-link resolution handler.
func (c *Component) ResolveHandler() http.Handler {
	if c == nil {
		return ResolveHandler()
	}
	return ResolveHandlerWithOptions(c.opts)
}

// RegisterRoutes registers the component handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux web.Mux, basePath string) ([]string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
