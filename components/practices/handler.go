package practices

import (
	"net/http"
	"strings"
	"sync"

	"github.com/lexport/go-sitekit/internal/render"
	"github.com/lexport/go-sitekit/pkg/web"
)

type searchResponse struct {
	Data []CategoryView `json:"data"`
}

type resolveResponse struct {
	Found    bool   `json:"found"`
	Slug     string `json:"slug,omitempty"`
	Key      *Key   `json:"key,omitempty"`
	Anchor   string `json:"anchor,omitempty"`
	SettleMS int64  `json:"settleMs,omitempty"`
}

// SearchHandler builds the filter endpoint with default options plus any
// overrides.
func SearchHandler(fns ...OptionFn) http.Handler {
	return SearchHandlerWithOptions(NewOptions(fns...))
}

// SearchHandlerWithOptions builds the filter endpoint from a pre-built
// Options value. An empty result is `{"data":[]}`, never an error.
func SearchHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r, opts) {
			return
		}

		term := r.URL.Query().Get(opts.SearchParam)
		results := Filter(opts.catalog(), term)
		if results == nil {
			results = []CategoryView{}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		web.WriteJSON(w, http.StatusOK, searchResponse{Data: results})
	})
}

// ResolveHandler builds the deep-link resolution endpoint.
func ResolveHandler(fns ...OptionFn) http.Handler {
	return ResolveHandlerWithOptions(NewOptions(fns...))
}

// ResolveHandlerWithOptions resolves a URL fragment to an item key. A miss is
// a silent no-op: 200 with found=false, matching the browser behaviour where
// an unknown slug simply leaves the accordion closed.
func ResolveHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r, opts) {
			return
		}

		fragment := r.URL.Query().Get(opts.FragmentParam)
		slug, ok := ParseFragment(fragment)
		if !ok {
			if direct := strings.TrimSpace(r.URL.Query().Get(opts.SlugParam)); direct != "" {
				slug, ok = direct, true
			}
		}

		if !ok {
			web.WriteJSON(w, http.StatusOK, resolveResponse{Found: false})
			return
		}
		key, found := opts.catalog().Resolve(slug)
		if !found {
			web.WriteJSON(w, http.StatusOK, resolveResponse{Found: false})
			return
		}
		web.WriteJSON(w, http.StatusOK, resolveResponse{
			Found:    true,
			Slug:     slug,
			Key:      &key,
			Anchor:   opts.catalog().Anchor(key),
			SettleMS: opts.ScrollSettle.Milliseconds(),
		})
	})
}

// PageHandler builds the server-rendered accordion page.
func PageHandler(fns ...OptionFn) http.Handler {
	return PageHandlerWithOptions(NewOptions(fns...))
}

// PageHandlerWithOptions renders the practice-areas page: the filtered
// accordion, the no-results view with its clear action, and the deep-link
// scroll hint when a slug resolves.
func PageHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	var (
		engineOnce sync.Once
		engine     render.TemplateRenderer
		engineErr  error
	)
	getEngine := func() (render.TemplateRenderer, error) {
		engineOnce.Do(func() {
			engine, engineErr = render.New(render.WithFS(templateFiles))
		})
		return engine, engineErr
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowGet(w, r, opts) {
			return
		}

		catalog := opts.catalog()
		query := r.URL.Query()
		term := query.Get(opts.SearchParam)

		state := NewState(catalog, WithFragment(query.Get(opts.FragmentParam)))
		scrollAnchor := ""
		if slug := strings.TrimSpace(query.Get(opts.SlugParam)); slug != "" {
			if key, found := catalog.Resolve(slug); found {
				state.Open(key)
				scrollAnchor = catalog.Anchor(key)
			}
		} else if state.OpenCount() > 0 {
			if slug, ok := ParseFragment(query.Get(opts.FragmentParam)); ok {
				if key, found := catalog.Resolve(slug); found {
					scrollAnchor = catalog.Anchor(key)
				}
			}
		}
		state.SetSearch(term)

		views := Filter(catalog, term)

		tmpl, err := getEngine()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		data := map[string]any{
			"pagePath":     opts.PageRoutePath,
			"searchParam":  opts.SearchParam,
			"search":       strings.TrimSpace(term),
			"noResults":    len(views) == 0 && strings.TrimSpace(term) != "",
			"categories":   categoriesContext(views, state),
			"scrollAnchor": scrollAnchor,
			"settleMs":     opts.ScrollSettle.Milliseconds(),
			"theme":        render.ThemeContext(opts.Theme),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		if _, err := tmpl.RenderTemplate("templates/page", data, w); err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})
}

func categoriesContext(views []CategoryView, state *State) []map[string]any {
	out := make([]map[string]any, 0, len(views))
	for _, view := range views {
		items := make([]map[string]any, 0, len(view.Items))
		for _, item := range view.Items {
			items = append(items, map[string]any{
				"title":  item.Title,
				"html":   item.HTML,
				"slug":   item.Slug,
				"anchor": item.Anchor,
				"open":   state.IsOpen(item.Key),
			})
		}
		out = append(out, map[string]any{
			"title": view.Title,
			"items": items,
		})
	}
	return out
}

func allowGet(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if opts.Guard != nil {
		if err := opts.Guard(r); err != nil {
			web.WriteGuardError(w, err)
			return false
		}
	}
	return true
}
