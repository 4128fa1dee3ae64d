package practices

import "strings"

// CategoryView is one category in a filtered result, carrying the keys of the
// items that survived the filter.
type CategoryView struct {
	Category     int        `json:"category"`
	Title        string     `json:"title"`
	TitleMatched bool       `json:"titleMatched,omitempty"`
	Items        []ItemView `json:"items"`
}

// ItemView is one visible item in a filtered result.
type ItemView struct {
	Key    Key    `json:"key"`
	Title  string `json:"title"`
	HTML   string `json:"html,omitempty"`
	Slug   string `json:"slug,omitempty"`
	Anchor string `json:"anchor"`
}

// Filter applies the case-insensitive substring filter to the catalog. A
// category survives if its own title matches or at least one item matches by
// title or body. Title-matched categories (and every category when term is
// empty) show all their items; otherwise only the matching ones. The result
// never shares state with the accordion: filtering is a pure view.
func Filter(catalog Catalog, term string) []CategoryView {
	needle := strings.ToLower(strings.TrimSpace(term))

	var out []CategoryView
	for ci, category := range catalog.Categories {
		titleMatched := needle == "" || contains(category.Title, needle)

		var items []ItemView
		for ii, item := range category.Items {
			if !titleMatched && !itemMatches(item, needle) {
				continue
			}
			key := Key{Category: ci, Item: ii}
			items = append(items, ItemView{
				Key:    key,
				Title:  item.Title,
				HTML:   item.HTML,
				Slug:   item.Slug,
				Anchor: catalog.Anchor(key),
			})
		}

		if !titleMatched && len(items) == 0 {
			continue
		}
		out = append(out, CategoryView{
			Category:     ci,
			Title:        category.Title,
			TitleMatched: titleMatched && needle != "",
			Items:        items,
		})
	}
	return out
}

func itemMatches(item Item, needle string) bool {
	return contains(item.Title, needle) || contains(item.Body, needle)
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
