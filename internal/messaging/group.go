package messaging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Runnable represents a component that can be started and shut down.
type Runnable interface {
	Start(ctx context.Context) error
	Shutdown() error
}

// ConsumerGroup starts and stops a set of consumers together.
// The subscriber they share is owned by the Bus, not the group.
type ConsumerGroup struct {
	consumers []Runnable
	started   int
	logger    *zap.Logger
}

// NewConsumerGroup creates an empty consumer group.
func NewConsumerGroup(logger *zap.Logger) *ConsumerGroup {
	return &ConsumerGroup{logger: logger}
}

// Add registers a consumer. Consumers added after Start are not started.
func (g *ConsumerGroup) Add(consumer Runnable) {
	g.consumers = append(g.consumers, consumer)
}

// Start starts every consumer, shutting down the ones already started on failure.
func (g *ConsumerGroup) Start(ctx context.Context) error {
	for i, consumer := range g.consumers {
		if err := consumer.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = g.consumers[j].Shutdown()
			}

			g.started = 0

			return fmt.Errorf("start consumer %d: %w", i, err)
		}
	}

	g.started = len(g.consumers)
	g.logger.Info("consumer group started", zap.Int("count", g.started))

	return nil
}

// Shutdown stops every started consumer and joins their errors.
func (g *ConsumerGroup) Shutdown() error {
	g.logger.Info("shutting down consumer group")

	var errs []error

	for _, consumer := range g.consumers[:g.started] {
		if err := consumer.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}

	g.started = 0

	return errors.Join(errs...)
}
