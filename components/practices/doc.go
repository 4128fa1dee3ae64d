// Package practices implements the practice-areas content browser: a
// two-level catalog of expandable entries with case-insensitive filtering and
// deep-linking to individual items via URL fragments.
//
// The package follows the component layout used across the sitekit modules: a
// Component wrapper, functional Options, a net/http handler, and routing
// helpers that mount the handler on any ServeMux-compatible mux. The
// accordion open/closed state machine itself is exposed as the State type so
// hosts rendering server-side can carry it between requests.
package practices
