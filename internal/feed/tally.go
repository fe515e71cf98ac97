package feed

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/linkledger/internal/messaging"
	"go.uber.org/zap"
)

// Tally is a downstream projection built only from published events.
// It counts created links and redirects per slug.
type Tally struct {
	mu        sync.RWMutex
	created   int
	redirects map[string]uint64
	logger    *zap.Logger
}

// NewTally creates an empty tally.
func NewTally(logger *zap.Logger) *Tally {
	return &Tally{
		redirects: make(map[string]uint64),
		logger:    logger,
	}
}

// HandleLinkCreated records a LinkCreated message.
func (t *Tally) HandleLinkCreated(_ context.Context, msg *Message) error {
	t.mu.Lock()
	t.created++
	t.mu.Unlock()

	t.logger.Info("link created event received",
		zap.String("slug", msg.Slug),
		zap.String("url", msg.URL),
		zap.Uint64("sequence", msg.Sequence),
		zap.Time("occurredAt", msg.OccurredAt),
	)

	return nil
}

// HandleLinkRedirected records a LinkRedirected message.
func (t *Tally) HandleLinkRedirected(_ context.Context, msg *Message) error {
	t.mu.Lock()
	t.redirects[msg.Slug]++
	t.mu.Unlock()

	t.logger.Info("link redirected event received",
		zap.String("slug", msg.Slug),
		zap.Uint64("sequence", msg.Sequence),
		zap.Time("occurredAt", msg.OccurredAt),
	)

	return nil
}

// Created returns how many LinkCreated messages were seen, changes included.
func (t *Tally) Created() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.created
}

// Redirects returns the redirect count seen for slug.
func (t *Tally) Redirects(slug string) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.redirects[slug]
}

// Consumers returns one consumer per topic, feeding t.
func (t *Tally) Consumers(subscriber message.Subscriber, logger *zap.Logger) []messaging.Runnable {
	return []messaging.Runnable{
		messaging.NewConsumer(subscriber, TopicLinkCreated, t.HandleLinkCreated, logger),
		messaging.NewConsumer(subscriber, TopicLinkRedirected, t.HandleLinkRedirected, logger),
	}
}
