package practices

import (
	"github.com/lexport/go-sitekit/pkg/web"
)

// MountPaths returns the page, search, and resolve mount paths under
// basePath.
func MountPaths(basePath string, fns ...OptionFn) (page, search, resolve string) {
	opts := NewOptions(fns...)
	return web.MountPath(basePath, opts.PageRoutePath),
		web.MountPath(basePath, opts.SearchRoutePath),
		web.MountPath(basePath, opts.ResolveRoutePath)
}

// RegisterRoutes mounts the page, search, and resolve handlers under basePath
// on mux and returns the registered patterns.
func RegisterRoutes(mux web.Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions mounts the handlers using a pre-built Options
// value. Callers are expected to pass an Options value produced by NewOptions
// so defaults apply.
func RegisterRoutesWithOptions(mux web.Mux, basePath string, opts Options) ([]string, error) {
	opts = NewOptions(func(o *Options) { *o = opts })

	patterns := make([]string, 0, 3)
	// Resolve registers before search so the more specific pattern wins on
	// muxes that match by longest prefix.
	pattern, err := web.Register(mux, basePath, opts.ResolveRoutePath, ResolveHandlerWithOptions(opts))
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, pattern)

	pattern, err = web.Register(mux, basePath, opts.SearchRoutePath, SearchHandlerWithOptions(opts))
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, pattern)

	pattern, err = web.Register(mux, basePath, opts.PageRoutePath, PageHandlerWithOptions(opts))
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, pattern)

	return patterns, nil
}
