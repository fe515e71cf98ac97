package shortener

import "context"

// EventLog is the append-only, ordered record of everything that happened.
type EventLog interface {
	// Append records event and returns it with its Sequence assigned.
	// A failed append must leave the log unchanged.
	Append(ctx context.Context, event Event) (Event, error)

	// Events returns a copy of all recorded events in append order.
	Events(ctx context.Context) ([]Event, error)

	// Len returns the number of recorded events.
	Len() int
}

// ReadStore is the queryable view kept consistent with the log at write time.
// Implementations are not required to be safe for concurrent use; the
// Service serializes access.
type ReadStore interface {
	// Get returns the current URL for slug.
	Get(slug Slug) (URL, bool)

	// Redirects returns the redirect count for slug, zero when unknown.
	Redirects(slug Slug) uint64

	// Apply folds a recorded event into the view.
	Apply(event Event)

	// Len returns the number of active links.
	Len() int
}
