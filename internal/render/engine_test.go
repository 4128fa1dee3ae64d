package render

import (
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"views/greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }} from {{ site }}"),
		},
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := New(
		WithFS(testFS()),
		WithGlobals(map[string]any{"site": "sitekit"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("views/greeting", map[string]any{"name": "counsel"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Hello counsel from sitekit" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEngine_RenderInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.Render("{{ value }}!", map[string]any{"value": "ok"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "ok!" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEngine_MissingTemplateFails(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.RenderTemplate("views/absent", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestNew_RequiresTemplateFS(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no template fs is provided")
	}
}

func TestThemeContext_BuildsCSSVarsBlock(t *testing.T) {
	ctx := ThemeContext(&theme.RendererConfig{
		Theme:   "harbor",
		Variant: "light",
		CSSVars: map[string]string{
			"--brand":  "#0b3d5c",
			"--accent": "#c8a24b",
		},
	})

	if ctx.Name != "harbor" || ctx.Variant != "light" {
		t.Fatalf("unexpected theme identity: %#v", ctx)
	}
	if !strings.HasPrefix(ctx.CSSVarsStyle, ":root {") {
		t.Fatalf("unexpected css vars block: %q", ctx.CSSVarsStyle)
	}
	if !strings.Contains(ctx.CSSVarsStyle, "--accent: #c8a24b;") {
		t.Fatalf("expected accent var, got %q", ctx.CSSVarsStyle)
	}
	accentIdx := strings.Index(ctx.CSSVarsStyle, "--accent")
	brandIdx := strings.Index(ctx.CSSVarsStyle, "--brand")
	if accentIdx > brandIdx {
		t.Fatal("expected css vars sorted by name")
	}
}

func TestThemeContext_NilConfig(t *testing.T) {
	if got := ThemeContext(nil); got.CSSVarsStyle != "" || got.Name != "" {
		t.Fatalf("expected zero theme, got %#v", got)
	}
}
