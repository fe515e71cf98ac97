package messaging

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

// Bus is an in-process pub/sub shared by event publishers and consumers.
type Bus struct {
	pubsub *gochannel.GoChannel
}

// NewBus creates an in-process bus. Messages published with no subscriber
// on the topic are dropped.
func NewBus(bufferSize int64, logger *zap.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: bufferSize},
			NewZapLogger(logger),
		),
	}
}

// Publisher returns the publishing side of the bus.
func (b *Bus) Publisher() message.Publisher {
	return b.pubsub
}

// Subscriber returns the subscribing side of the bus.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Shutdown closes the bus and every open subscription.
func (b *Bus) Shutdown() error {
	return b.pubsub.Close()
}
