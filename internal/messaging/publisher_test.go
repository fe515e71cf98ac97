package messaging_test

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/linkledger/internal/feed"
	"github.com/serroba/linkledger/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	messages   []*message.Message
	topic      string
	publishErr error
	closeErr   error
}

func (m *mockPublisher) Publish(topic string, msgs ...*message.Message) error {
	if m.publishErr != nil {
		return m.publishErr
	}

	m.topic = topic
	m.messages = append(m.messages, msgs...)

	return nil
}

func (m *mockPublisher) Close() error {
	return m.closeErr
}

func TestNewPublishFunc(t *testing.T) {
	t.Run("publishes payload on the topic", func(t *testing.T) {
		mock := &mockPublisher{}
		publish := messaging.NewPublishFunc[feed.Message](mock, feed.TopicLinkCreated)

		err := publish(messaging.Envelope{}, &feed.Message{Slug: "abc123", URL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, "link.created", mock.topic)
		require.Len(t, mock.messages, 1)
		assert.Contains(t, string(mock.messages[0].Payload), `"slug":"abc123"`)
		assert.NotEmpty(t, mock.messages[0].UUID)
	})

	t.Run("uses envelope id and metadata", func(t *testing.T) {
		mock := &mockPublisher{}
		publish := messaging.NewPublishFunc[feed.Message](mock, feed.TopicLinkCreated)

		err := publish(messaging.Envelope{
			ID:       "event-1",
			Metadata: map[string]string{"kind": "LinkCreated"},
		}, &feed.Message{Slug: "abc123"})

		require.NoError(t, err)
		require.Len(t, mock.messages, 1)
		assert.Equal(t, "event-1", mock.messages[0].UUID)
		assert.Equal(t, "LinkCreated", mock.messages[0].Metadata.Get("kind"))
	})

	t.Run("returns error when publish fails", func(t *testing.T) {
		mock := &mockPublisher{publishErr: errors.New("publish error")}
		publish := messaging.NewPublishFunc[feed.Message](mock, feed.TopicLinkCreated)

		err := publish(messaging.Envelope{}, &feed.Message{Slug: "abc123"})

		assert.Error(t, err)
	})
}
