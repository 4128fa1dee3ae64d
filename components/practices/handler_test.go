package practices

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/lexport/go-sitekit/pkg/web"
)

func TestSearchHandler_FiltersCatalog(t *testing.T) {
	h := SearchHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodGet, "/api/practices?q=valuation", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload searchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data) != 1 || len(payload.Data[0].Items) != 1 {
		t.Fatalf("unexpected payload: %#v", payload)
	}
	if payload.Data[0].Items[0].Slug != "customs-valuation" {
		t.Fatalf("unexpected item: %#v", payload.Data[0].Items[0])
	}
}

func TestSearchHandler_NoMatchesIsEmptyDataNotError(t *testing.T) {
	h := SearchHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodGet, "/api/practices?q=zzz-no-match-zzz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var payload searchResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestSearchHandler_RejectsPost(t *testing.T) {
	h := SearchHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodPost, "/api/practices", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestSearchHandler_GuardRejects(t *testing.T) {
	h := SearchHandler(
		WithCatalog(testCatalog(t)),
		WithGuard(func(*http.Request) error {
			return web.StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/practices", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from guard, got %d", rec.Code)
	}
}

func TestResolveHandler_FragmentForms(t *testing.T) {
	h := ResolveHandler(WithCatalog(testCatalog(t)))

	for _, fragment := range []string{
		"#/practice-areas?slug=customs-valuation",
		"#/practice-areas/customs-valuation",
	} {
		req := httptest.NewRequest(http.MethodGet,
			"/api/practices/resolve?fragment="+url.QueryEscape(fragment), nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var payload resolveResponse
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !payload.Found || payload.Anchor != "practice-customs-valuation" {
			t.Fatalf("fragment %q: unexpected payload %#v", fragment, payload)
		}
		if payload.Key == nil || *payload.Key != (Key{Category: 0, Item: 0}) {
			t.Fatalf("fragment %q: unexpected key %#v", fragment, payload.Key)
		}
		if payload.SettleMS <= 0 {
			t.Fatalf("expected a scroll settle hint, got %d", payload.SettleMS)
		}
	}
}

func TestResolveHandler_MissIsSilent(t *testing.T) {
	h := ResolveHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodGet,
		"/api/practices/resolve?fragment="+url.QueryEscape("#/practice-areas?slug=unknown"), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a silent miss, got %d", rec.Code)
	}
	var payload resolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Found {
		t.Fatalf("expected found=false, got %#v", payload)
	}
}

func TestPageHandler_DeepLinkOpensAndScrolls(t *testing.T) {
	h := PageHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodGet, "/practice-areas?slug=customs-valuation", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-scroll-anchor="practice-customs-valuation"`) {
		t.Fatalf("expected scroll anchor hint, got:\n%s", body)
	}
	if !strings.Contains(body, `id="practice-customs-valuation" class="practice-item" open`) {
		t.Fatalf("expected deep-linked item rendered open, got:\n%s", body)
	}
	if !strings.Contains(body, `id="practice-tariff-classification" class="practice-item">`) {
		t.Fatalf("expected sibling item rendered closed, got:\n%s", body)
	}
}

func TestPageHandler_NoResultsViewOffersClear(t *testing.T) {
	h := PageHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodGet, "/practice-areas?q=zzz-no-match-zzz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "No practice areas match") {
		t.Fatalf("expected no-results copy, got:\n%s", body)
	}
	if !strings.Contains(body, `href="/practice-areas"`) {
		t.Fatalf("expected clear action linking back to the unfiltered page, got:\n%s", body)
	}
}

func TestPageHandler_RendersSanitizedBodies(t *testing.T) {
	h := PageHandler(WithCatalog(testCatalog(t)))

	req := httptest.NewRequest(http.MethodGet, "/practice-areas", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Customs Valuation") || !strings.Contains(body, "Sanctions Screening") {
		t.Fatalf("expected all items rendered, got:\n%s", body)
	}
	if !strings.Contains(body, "<p>") {
		t.Fatalf("expected rendered markdown bodies, got:\n%s", body)
	}
}
