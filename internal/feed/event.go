package feed

import (
	"time"

	"github.com/serroba/linkledger/internal/shortener"
)

const (
	TopicLinkCreated    = "link.created"
	TopicLinkRedirected = "link.redirected"
)

// Message is the payload published for every recorded event.
type Message struct {
	ID         string    `json:"id"`
	Sequence   uint64    `json:"sequence"`
	Kind       string    `json:"kind"`
	Slug       string    `json:"slug"`
	URL        string    `json:"url,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewMessage converts a recorded event to its published form.
func NewMessage(event shortener.Event) *Message {
	return &Message{
		ID:         event.ID.String(),
		Sequence:   event.Sequence,
		Kind:       string(event.Kind),
		Slug:       string(event.Slug),
		URL:        string(event.URL),
		OccurredAt: event.OccurredAt,
	}
}

// TopicFor returns the topic an event kind is published on.
func TopicFor(kind shortener.EventKind) (string, bool) {
	switch kind {
	case shortener.EventLinkCreated:
		return TopicLinkCreated, true
	case shortener.EventLinkRedirected:
		return TopicLinkRedirected, true
	default:
		return "", false
	}
}
