package feed

import (
	"context"
	"strconv"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/linkledger/internal/messaging"
	"github.com/serroba/linkledger/internal/shortener"
	"go.uber.org/zap"
)

// PublishingLog wraps an EventLog and publishes every recorded event.
// The wrapped log stays the source of truth: publish failures are logged
// and never fail the append.
type PublishingLog struct {
	log     shortener.EventLog
	publish map[string]messaging.Publish[Message]
	logger  *zap.Logger
}

// NewPublishingLog creates a publishing decorator around log.
func NewPublishingLog(log shortener.EventLog, publisher message.Publisher, logger *zap.Logger) *PublishingLog {
	return &PublishingLog{
		log: log,
		publish: map[string]messaging.Publish[Message]{
			TopicLinkCreated:    messaging.NewPublishFunc[Message](publisher, TopicLinkCreated),
			TopicLinkRedirected: messaging.NewPublishFunc[Message](publisher, TopicLinkRedirected),
		},
		logger: logger,
	}
}

// Append records event in the wrapped log, then publishes it.
func (p *PublishingLog) Append(ctx context.Context, event shortener.Event) (shortener.Event, error) {
	recorded, err := p.log.Append(ctx, event)
	if err != nil {
		return shortener.Event{}, err
	}

	topic, ok := TopicFor(recorded.Kind)
	if !ok {
		p.logger.Warn("no topic for event kind", zap.String("kind", string(recorded.Kind)))

		return recorded, nil
	}

	env := messaging.Envelope{
		ID: recorded.ID.String(),
		Metadata: map[string]string{
			"kind":     string(recorded.Kind),
			"sequence": strconv.FormatUint(recorded.Sequence, 10),
		},
	}

	if err := p.publish[topic](env, NewMessage(recorded)); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("slug", string(recorded.Slug)),
			zap.Uint64("sequence", recorded.Sequence),
			zap.Error(err),
		)
	}

	return recorded, nil
}

func (p *PublishingLog) Events(ctx context.Context) ([]shortener.Event, error) {
	return p.log.Events(ctx)
}

func (p *PublishingLog) Len() int {
	return p.log.Len()
}

// Compile-time check.
var _ shortener.EventLog = (*PublishingLog)(nil)
