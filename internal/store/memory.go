package store

import "github.com/serroba/linkledger/internal/shortener"

// MemoryStore is the in-memory read-state: the link table and redirect counters.
// It is not synchronized; shortener.Service guards it together with the event log.
type MemoryStore struct {
	links  map[shortener.Slug]shortener.URL
	clicks map[shortener.Slug]uint64
}

// NewMemoryStore creates an empty read-state.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:  make(map[shortener.Slug]shortener.URL),
		clicks: make(map[shortener.Slug]uint64),
	}
}

// Get returns the URL slug currently points at.
func (m *MemoryStore) Get(slug shortener.Slug) (shortener.URL, bool) {
	url, ok := m.links[slug]

	return url, ok
}

// Redirects returns the redirect count for slug, zero when absent.
func (m *MemoryStore) Redirects(slug shortener.Slug) uint64 {
	return m.clicks[slug]
}

// Apply folds event into the view. Unknown kinds are ignored.
func (m *MemoryStore) Apply(event shortener.Event) {
	switch event.Kind {
	case shortener.EventLinkCreated:
		m.links[event.Slug] = event.URL
	case shortener.EventLinkRedirected:
		m.clicks[event.Slug]++
	}
}

// Len returns the number of active slugs.
func (m *MemoryStore) Len() int {
	return len(m.links)
}

// Compile-time check.
var _ shortener.ReadStore = (*MemoryStore)(nil)
