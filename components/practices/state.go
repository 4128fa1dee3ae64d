package practices

// Key addresses one item by category and item position. Keys stay stable for
// the lifetime of a loaded catalog.
type Key struct {
	Category int `json:"category"`
	Item     int `json:"item"`
}

// State is the per-mount accordion state: the set of open item keys plus the
// live search term. Items default to closed; any number may be open at once,
// and toggling one never affects another. Filtering never mutates the open
// set, so items hidden by a search keep their state for when the search is
// cleared.
type State struct {
	open   map[Key]struct{}
	search string
}

// StateOption configures the initial state.
type StateOption func(*State, Catalog)

// WithFragment resolves a deep-link fragment against the catalog and, on a
// slug match, pre-opens the target item. Misses are a silent no-op.
func WithFragment(fragment string) StateOption {
	return func(s *State, catalog Catalog) {
		slug, ok := ParseFragment(fragment)
		if !ok {
			return
		}
		if key, found := catalog.Resolve(slug); found {
			s.Open(key)
		}
	}
}

// WithOpen pre-opens the given keys.
func WithOpen(keys ...Key) StateOption {
	return func(s *State, _ Catalog) {
		for _, key := range keys {
			s.Open(key)
		}
	}
}

// NewState builds the initial accordion state for a catalog: everything
// closed unless an option opens it.
func NewState(catalog Catalog, options ...StateOption) *State {
	state := &State{open: make(map[Key]struct{})}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(state, catalog)
	}
	return state
}

// Toggle flips the open state of key and returns the new state.
func (s *State) Toggle(key Key) bool {
	if _, open := s.open[key]; open {
		delete(s.open, key)
		return false
	}
	s.open[key] = struct{}{}
	return true
}

// Open marks key open. Idempotent.
func (s *State) Open(key Key) {
	s.open[key] = struct{}{}
}

// IsOpen reports whether key is currently open.
func (s *State) IsOpen(key Key) bool {
	_, open := s.open[key]
	return open
}

// OpenCount returns the number of open items.
func (s *State) OpenCount() int {
	return len(s.open)
}

// Search returns the current search term.
func (s *State) Search() string {
	return s.search
}

// SetSearch replaces the search term.
func (s *State) SetSearch(term string) {
	s.search = term
}

// ClearSearch resets the term to empty. It reports whether anything changed;
// clearing an already-empty term is a no-op.
func (s *State) ClearSearch() bool {
	if s.search == "" {
		return false
	}
	s.search = ""
	return true
}
