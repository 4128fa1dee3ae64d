package sitekit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountRegistersBothComponents(t *testing.T) {
	mux := http.NewServeMux()
	patterns, err := Mount(mux, "/site", NewEvaluation(), NewPractices())
	if err != nil {
		t.Fatal(err)
	}
	if len(patterns) != 6 {
		t.Fatalf("patterns = %v, want 6 entries", patterns)
	}

	for _, path := range []string{"/site/evaluation", "/site/practice-areas"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}
