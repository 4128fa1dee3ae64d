// Package render wraps the pongo2 template set used for the server-rendered
// site views. Templates are loaded from an fs.FS, parsed once, and cached for
// the lifetime of the engine.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplate "github.com/goliatone/go-template"
)

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract, providing the seam the components render through.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	extension string
	globals   map[string]any
}

// WithFS supplies the template bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default ".tmpl" template extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGlobals seeds context values available to every template.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithEngineOptions exists for compatibility with callers configuring the
// upstream go-template engine directly; the pongo2-backed engine applies its
// own defaults and ignores them.
func WithEngineOptions(_ ...gotemplate.Option) Option {
	return func(*config) {}
}

// Engine renders named templates from a parsed, cached pongo2 template set.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	cache     map[string]*pongo2.Template
	extension string
}

var _ TemplateRenderer = (*Engine)(nil)

// New constructs an Engine from the provided options. A template FS is
// required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("render: template fs is required")
	}

	set := pongo2.NewSet("sitekit", pongo2.NewFSLoader(cfg.templates))
	if len(cfg.globals) > 0 {
		set.Globals = pongo2.Context(cfg.globals)
	}

	return &Engine{
		set:       set,
		cache:     make(map[string]*pongo2.Template),
		extension: cfg.extension,
	}, nil
}

// Render parses name as inline template content when it contains template
// markers, otherwise treats it as a template path.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the named template file with the supplied data.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}

	path := name
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, path, data, out...)
}

// RenderString executes inline template content with the supplied data.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("render: engine is nil")
	}

	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("render: parse inline template: %w", err)
	}
	return e.execute(tmpl, "inline", data, out...)
}

func (e *Engine) execute(tmpl *pongo2.Template, path string, data any, out ...io.Writer) (string, error) {
	ctx, err := templateContext(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("render: execute template %q: %w", path, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", path, err)
	}
	e.cache[path] = tmpl
	return tmpl, nil
}

func templateContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return nil, fmt.Errorf("render: unsupported context type %T", data)
	}
}
