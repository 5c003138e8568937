package models

// CatalogStatus is the load state of one category's entry list.
type CatalogStatus int

const (
	// CatalogNotLoaded means no fetch has been issued yet.
	CatalogNotLoaded CatalogStatus = iota
	// CatalogLoading means a fetch is in flight.
	CatalogLoading
	// CatalogLoaded means Entries holds the category listing.
	CatalogLoaded
	// CatalogFailed means the last fetch failed; Err holds the reason.
	CatalogFailed
)

// String returns the status name used in logs.
func (s CatalogStatus) String() string {
	switch s {
	case CatalogLoading:
		return "loading"
	case CatalogLoaded:
		return "loaded"
	case CatalogFailed:
		return "failed"
	default:
		return "not_loaded"
	}
}

// CatalogState wraps a category listing together with its load status.
// Callers must go through Entry or Entries; indexing an unloaded list is not
// possible.
type CatalogState struct {
	Status  CatalogStatus
	entries []Entry
	Err     error
}

// NewLoadedCatalog returns a Loaded state holding entries.
func NewLoadedCatalog(entries []Entry) CatalogState {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return CatalogState{Status: CatalogLoaded, entries: out}
}

// NewFailedCatalog returns a Failed state with an empty listing.
func NewFailedCatalog(err error) CatalogState {
	return CatalogState{Status: CatalogFailed, Err: err}
}

// Loaded reports whether the listing is available.
func (s CatalogState) Loaded() bool {
	return s.Status == CatalogLoaded
}

// Len returns the number of entries, zero unless loaded.
func (s CatalogState) Len() int {
	if !s.Loaded() {
		return 0
	}
	return len(s.entries)
}

// Entries returns the listing, or nil unless loaded.
func (s CatalogState) Entries() []Entry {
	if !s.Loaded() {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the i-th entry. ok is false when the listing is not loaded
// or i is out of range.
func (s CatalogState) Entry(i int) (Entry, bool) {
	if !s.Loaded() || i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}
