package practices

import (
	"net/url"
	"strings"
)

// BaseFragment is the fragment prefix the site uses for practice-area
// deep links.
const BaseFragment = "/practice-areas"

// ParseFragment extracts a deep-link slug from a URL fragment. Two forms are
// accepted after the base fragment:
//
//	#/practice-areas?slug=customs-valuation   (query style)
//	#/practice-areas/customs-valuation        (legacy path style)
//
// The two forms are parsed by independent extractors; anything else reports
// ok=false.
func ParseFragment(fragment string) (string, bool) {
	rest, ok := splitBase(fragment, BaseFragment)
	if !ok {
		return "", false
	}
	if slug, ok := querySlug(rest); ok {
		return slug, true
	}
	return legacySlug(rest)
}

// splitBase strips the leading "#" and the base prefix, returning the
// remainder. A fragment that does not start with base does not deep-link.
func splitBase(fragment, base string) (string, bool) {
	trimmed := strings.TrimSpace(fragment)
	trimmed = strings.TrimPrefix(trimmed, "#")
	if !strings.HasPrefix(trimmed, base) {
		return "", false
	}
	return trimmed[len(base):], true
}

// querySlug handles the "?slug=<value>" form.
func querySlug(rest string) (string, bool) {
	if !strings.HasPrefix(rest, "?") {
		return "", false
	}
	values, err := url.ParseQuery(rest[1:])
	if err != nil {
		return "", false
	}
	slug := strings.TrimSpace(values.Get("slug"))
	if slug == "" {
		return "", false
	}
	return slug, true
}

// legacySlug handles the "/<value>" form: a single path segment with no
// further structure.
func legacySlug(rest string) (string, bool) {
	if !strings.HasPrefix(rest, "/") {
		return "", false
	}
	value := rest[1:]
	if value == "" || strings.ContainsAny(value, "/?") {
		return "", false
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		value = decoded
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
