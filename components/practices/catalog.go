package practices

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// Item is a single practice-area entry. Body holds the authored markdown;
// HTML is the rendered, sanitized fragment templates embed. Slug, when set,
// makes the item deep-linkable. Slug uniqueness across the catalog is assumed
// rather than enforced; on duplicates the first match wins.
type Item struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Slug  string `yaml:"slug,omitempty"`

	HTML string `yaml:"-"`
}

// Category is a named, ordered grouping of items.
type Category struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

// Catalog is the full ordered content tree the browser operates on.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

var (
	markdown = goldmark.New()

	bodyPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

func htmlPolicy() *bluemonday.Policy {
	bodyPolicyOnce.Do(func() {
		bodyPolicy = bluemonday.UGCPolicy()
	})
	return bodyPolicy
}

// LoadCatalog parses a YAML catalog document and renders each item body from
// markdown into sanitized HTML.
func LoadCatalog(raw []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("practices: parse catalog: %w", err)
	}

	for ci := range catalog.Categories {
		category := &catalog.Categories[ci]
		category.Title = strings.TrimSpace(category.Title)
		for ii := range category.Items {
			item := &category.Items[ii]
			item.Title = strings.TrimSpace(item.Title)
			item.Slug = strings.TrimSpace(item.Slug)

			rendered, err := renderBody(item.Body)
			if err != nil {
				return Catalog{}, fmt.Errorf("practices: render item %q: %w", item.Title, err)
			}
			item.HTML = rendered
		}
	}
	return catalog, nil
}

// LoadCatalogFile reads and parses a catalog from disk.
func LoadCatalogFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("practices: read catalog: %w", err)
	}
	return LoadCatalog(raw)
}

func renderBody(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(trimmed), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(htmlPolicy().Sanitize(buf.String())), nil
}

// Resolve returns the key of the first item whose slug equals slug. A miss
// reports ok=false and is not an error.
func (c Catalog) Resolve(slug string) (Key, bool) {
	if slug == "" {
		return Key{}, false
	}
	for ci, category := range c.Categories {
		for ii, item := range category.Items {
			if item.Slug != "" && item.Slug == slug {
				return Key{Category: ci, Item: ii}, true
			}
		}
	}
	return Key{}, false
}

// Item returns the item addressed by key.
func (c Catalog) Item(key Key) (Item, bool) {
	if key.Category < 0 || key.Category >= len(c.Categories) {
		return Item{}, false
	}
	items := c.Categories[key.Category].Items
	if key.Item < 0 || key.Item >= len(items) {
		return Item{}, false
	}
	return items[key.Item], true
}

// Anchor returns the DOM anchor id for the item at key, used by the deep-link
// scroll hint.
func (c Catalog) Anchor(key Key) string {
	if item, ok := c.Item(key); ok && item.Slug != "" {
		return "practice-" + item.Slug
	}
	return fmt.Sprintf("practice-%d-%d", key.Category, key.Item)
}
