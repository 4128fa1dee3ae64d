package evaluation

import (
	"github.com/lexport/go-sitekit/pkg/web"
)

// MountPaths returns the page, submit, and validate mount paths under
// basePath.
func MountPaths(basePath string, fns ...OptionFn) (page, submit, validate string) {
	opts := NewOptions(fns...)
	return web.MountPath(basePath, opts.PageRoutePath),
		web.MountPath(basePath, opts.SubmitRoutePath),
		web.MountPath(basePath, opts.ValidateRoutePath)
}

// RegisterRoutes mounts the page, submit, and validate handlers under
// basePath on mux and returns the registered patterns.
func RegisterRoutes(mux web.Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions mounts the handlers using a pre-built Options
// value. Callers are expected to pass an Options value produced by NewOptions
// so defaults apply.
func RegisterRoutesWithOptions(mux web.Mux, basePath string, opts Options) ([]string, error) {
	opts = NewOptions(func(o *Options) { *o = opts })

	patterns := make([]string, 0, 3)
	// Validate registers before submit so the more specific pattern wins on
	// muxes that match by longest prefix.
	pattern, err := web.Register(mux, basePath, opts.ValidateRoutePath, ValidateHandlerWithOptions(opts))
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, pattern)

	pattern, err = web.Register(mux, basePath, opts.SubmitRoutePath, SubmitHandlerWithOptions(opts))
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
