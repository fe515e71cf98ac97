package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Envelope carries the message identity and metadata for a published event.
// An empty ID gets a fresh UUID.
type Envelope struct {
	ID       string
	Metadata map[string]string
}

// Publish sends a typed event on the topic it was built for.
type Publish[T any] func(env Envelope, event *T) error

// NewPublishFunc creates a typed publish function for a specific topic.
func NewPublishFunc[T any](publisher message.Publisher, topic string) Publish[T] {
	return func(env Envelope, event *T) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", topic, err)
		}

		id := env.ID
		if id == "" {
			id = watermill.NewUUID()
		}

		msg := message.NewMessage(id, payload)
		for k, v := range env.Metadata {
			msg.Metadata.Set(k, v)
		}

		return publisher.Publish(topic, msg)
	}
}
