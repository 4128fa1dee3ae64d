package evaluation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMountPaths(t *testing.T) {
	page, submit, validate := MountPaths("/site")
	if page != "/site/evaluation" {
		t.Errorf("page = %q", page)
	}
	if submit != "/site/api/evaluation" {
		t.Errorf("submit = %q", submit)
	}
	if validate != "/site/api/evaluation/validate" {
		t.Errorf("validate = %q", validate)
	}
}

func TestRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	patterns, err := RegisterRoutes(mux, "")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"/api/evaluation/validate", "/api/evaluation", "/evaluation"}
	if diff := cmp.Diff(want, patterns); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/evaluation", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("page status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/evaluation/validate", strings.NewReader(`{"field":"phone","value":"letters"}`))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("validate status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), msgInvalidPhone) {
		t.Errorf("validate body = %s", rec.Body.String())
	}
}

func TestComponentRegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	component := New(WithIntakeEndpoint("http://intake.example"))

	patterns, err := component.RegisterRoutes(mux, "/firm")
	if err != nil {
		t.Fatal(err)
	}
	if len(patterns) != 3 {
		t.Fatalf("patterns = %v, want 3 entries", patterns)
	}
	for _, pattern := range patterns {
		if !strings.HasPrefix(pattern, "/firm/") {
			t.Errorf("pattern %q not mounted under base path", pattern)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/firm/evaluation", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("mounted page status = %d, want 200", rec.Code)
	}
}
