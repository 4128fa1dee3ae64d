package practices

import (
	"net/http"
	"time"

	theme "github.com/goliatone/go-theme"
)

// GuardFunc gates requests before the handler runs. Returning an error
// rejects the request; errors implementing HTTPError choose the status code.
type GuardFunc func(r *http.Request) error

// CatalogProvider supplies the current catalog on each request, letting hosts
// hot-swap content (for example from a file watcher) without rebuilding the
// component.
type CatalogProvider func() Catalog

// DefaultScrollSettleDelay is how long the client should wait for layout to
// settle before scrolling a deep-linked item into view.
const DefaultScrollSettleDelay = 150 * time.Millisecond

type Options struct {
	PageRoutePath    string
	SearchRoutePath  string
	ResolveRoutePath string
	SearchParam      string
	SlugParam        string
	FragmentParam    string
	ScrollSettle     time.Duration
	Guard            GuardFunc
	Theme            *theme.RendererConfig

	Catalog  Catalog
	Provider CatalogProvider
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		PageRoutePath:    "/practice-areas",
		SearchRoutePath:  "/api/practices",
		ResolveRoutePath: "/api/practices/resolve",
		SearchParam:      "q",
		SlugParam:        "slug",
		FragmentParam:    "fragment",
		ScrollSettle:     DefaultScrollSettleDelay,
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
	if opts.SearchRoutePath == "" {
		opts.SearchRoutePath = defaults.SearchRoutePath
	}
	if opts.ResolveRoutePath == "" {
		opts.ResolveRoutePath = defaults.ResolveRoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = defaults.SearchParam
	}
	if opts.SlugParam == "" {
		opts.SlugParam = defaults.SlugParam
	}
	if opts.FragmentParam == "" {
		opts.FragmentParam = defaults.FragmentParam
	}
	if opts.ScrollSettle <= 0 {
		opts.ScrollSettle = defaults.ScrollSettle
	}
	return opts
}

// WithCatalog sets a static catalog.
func WithCatalog(catalog Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Catalog = catalog
	}
}

// WithCatalogProvider sets a dynamic catalog source. It takes precedence over
// WithCatalog when both are configured.
func WithCatalogProvider(provider CatalogProvider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
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

func WithSearchRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchRoutePath = path
	}
}

func WithResolveRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ResolveRoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
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

// WithScrollSettle overrides the scroll settle delay hint.
func WithScrollSettle(delay time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ScrollSettle = delay
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

func (o Options) catalog() Catalog {
	if o.Provider != nil {
		return o.Provider()
	}
	return o.Catalog
}
