package practices

import "testing"

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	catalog, err := LoadCatalog([]byte(`
categories:
  - title: Customs & Import Compliance
    items:
      - title: Customs Valuation
        slug: customs-valuation
        body: |
          Transaction value, assists, and related-party pricing under the
          valuation agreement.
      - title: Tariff Classification
        slug: tariff-classification
        body: HTS classification rulings and protest practice.
  - title: Export Controls
    items:
      - title: Export Licensing
        slug: export-licensing
        body: EAR and ITAR license determinations and commodity jurisdiction.
      - title: Sanctions Screening
        body: OFAC list screening programs for forwarders and carriers.
`))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return catalog
}

func TestState_ToggleIsReversible(t *testing.T) {
	catalog := testCatalog(t)
	state := NewState(catalog)
	key := Key{Category: 0, Item: 1}
	other := Key{Category: 1, Item: 0}
	state.Open(other)

	if state.IsOpen(key) {
		t.Fatal("expected items to start closed")
	}
	if !state.Toggle(key) || !state.IsOpen(key) {
		t.Fatal("expected first toggle to open the item")
	}
	if state.Toggle(key) || state.IsOpen(key) {
		t.Fatal("expected second toggle to close the item")
	}
	if !state.IsOpen(other) {
		t.Fatal("toggling one item must not affect another")
	}
}

func TestState_DeepLinkOpenIsIdempotent(t *testing.T) {
	catalog := testCatalog(t)
	state := NewState(catalog, WithFragment("#/practice-areas?slug=customs-valuation"))

	key := Key{Category: 0, Item: 0}
	if !state.IsOpen(key) {
		t.Fatal("expected deep-linked item to start open")
	}
	if state.OpenCount() != 1 {
		t.Fatalf("expected exactly one open item, got %d", state.OpenCount())
	}

	state.Open(key)
	if state.OpenCount() != 1 {
		t.Fatal("expected repeated open to be idempotent")
	}
}

func TestState_DeepLinkMissIsSilent(t *testing.T) {
	catalog := testCatalog(t)
	state := NewState(catalog, WithFragment("#/practice-areas?slug=not-a-slug"))
	if state.OpenCount() != 0 {
		t.Fatalf("expected no open items on miss, got %d", state.OpenCount())
	}
}

func TestState_ClearSearchIsIdempotent(t *testing.T) {
	state := NewState(Catalog{})

	if state.ClearSearch() {
		t.Fatal("clearing an empty search term must be a no-op")
	}

	state.SetSearch("export")
	if !state.ClearSearch() {
		t.Fatal("expected clear to report a change")
	}
	if state.Search() != "" {
		t.Fatalf("expected empty term, got %q", state.Search())
	}
	if state.ClearSearch() {
		t.Fatal("second clear must be a no-op")
	}
}
