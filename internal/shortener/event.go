package shortener

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names the type of a recorded event.
type EventKind string

const (
	// EventLinkCreated records that a slug now points at a URL. It is emitted
	// both when a link is created and when its destination is changed.
	EventLinkCreated EventKind = "LinkCreated"
	// EventLinkRedirected records a single redirect through a slug.
	EventLinkRedirected EventKind = "LinkRedirected"
)

// Event is an immutable record of a state change.
type Event struct {
	ID         uuid.UUID
	Sequence   uint64 // assigned by the EventLog on append
	Kind       EventKind
	Slug       Slug
	URL        URL // empty for EventLinkRedirected
	OccurredAt time.Time
}

// NewLinkCreated builds a LinkCreated event for slug -> url.
func NewLinkCreated(slug Slug, url URL, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       EventLinkCreated,
		Slug:       slug,
		URL:        url,
		OccurredAt: at,
	}
}

// NewLinkRedirected builds a LinkRedirected event for slug.
func NewLinkRedirected(slug Slug, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       EventLinkRedirected,
		Slug:       slug,
		OccurredAt: at,
	}
}
