package messaging

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Handler processes a single decoded event.
type Handler[T any] func(ctx context.Context, event *T) error

type metadataKey struct{}

// MetadataFromContext returns the metadata of the message being handled.
func MetadataFromContext(ctx context.Context) message.Metadata {
	if md, ok := ctx.Value(metadataKey{}).(message.Metadata); ok {
		return md
	}

	return message.Metadata{}
}

// Consumer subscribes to one topic and feeds decoded messages to a handler.
// Messages are acked once handled; a UUID that was already handled is acked
// again without calling the handler, so nack-driven redelivery never
// double-applies an event.
type Consumer[T any] struct {
	subscriber message.Subscriber
	topic      string
	handler    Handler[T]
	handled    map[string]struct{} // owned by the consume loop
	logger     *zap.Logger
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewConsumer creates a consumer for events of type T on topic.
func NewConsumer[T any](
	subscriber message.Subscriber,
	topic string,
	handler Handler[T],
	logger *zap.Logger,
) *Consumer[T] {
	return &Consumer[T]{
		subscriber: subscriber,
		topic:      topic,
		handler:    handler,
		handled:    make(map[string]struct{}),
		logger:     logger.With(zap.String("topic", topic)),
		done:       make(chan struct{}),
	}
}

// Topic returns the topic this consumer subscribes to.
func (c *Consumer[T]) Topic() string {
	return c.topic
}

// Start subscribes and begins processing in the background.
func (c *Consumer[T]) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	msgs, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		cancel()

		return err
	}

	c.cancel = cancel

	go c.consumeLoop(ctx, msgs)

	return nil
}

func (c *Consumer[T]) consumeLoop(ctx context.Context, msgs <-chan *message.Message) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}

			if c.handle(ctx, msg) {
				msg.Ack()
			} else {
				msg.Nack()
			}
		}
	}
}

// handle reports whether msg should be acked.
func (c *Consumer[T]) handle(ctx context.Context, msg *message.Message) bool {
	log := c.logger.With(zap.String("uuid", msg.UUID))

	if _, seen := c.handled[msg.UUID]; seen {
		log.Debug("skipping redelivered event")

		return true
	}

	var event T
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Error("failed to decode event", zap.Error(err))

		return false
	}

	if err := c.handler(context.WithValue(ctx, metadataKey{}, msg.Metadata), &event); err != nil {
		log.Error("failed to handle event", zap.Error(err))

		return false
	}

	c.handled[msg.UUID] = struct{}{}
	log.Debug("processed event")

	return true
}

// Shutdown stops the consumer and waits for the in-flight message to finish.
// It is a no-op on a consumer that was never started.
func (c *Consumer[T]) Shutdown() error {
	if c.cancel == nil {
		return nil
	}

	c.cancel()
	<-c.done

	return nil
}
