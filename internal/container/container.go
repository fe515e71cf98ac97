package container

import (
	"fmt"

	"github.com/samber/do"
	"github.com/serroba/linkledger/internal/feed"
	"github.com/serroba/linkledger/internal/messaging"
	"github.com/serroba/linkledger/internal/shortener"
	"github.com/serroba/linkledger/internal/store"
	"go.uber.org/zap"
)

type Options struct {
	SlugLength  int    `default:"8"       help:"Length of generated slugs"                      short:"s"`
	ValidateURL bool   `default:"false"   help:"Reject destinations that are not http(s) URLs"`
	LogFormat   string `default:"console" help:"Log output format: console or json"`
	EventFeed   bool   `default:"true"    help:"Publish recorded events to in-process consumers"`
	FeedBuffer  int    `default:"64"      help:"Per-subscriber buffer of the event feed"`
}

// LoggerPackage provides the application logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		return NewLogger(opts.LogFormat)
	})
}

// NewLogger builds a zap logger for the given format.
func NewLogger(format string) (*zap.Logger, error) {
	switch format {
	case "json":
		return zap.NewProduction()
	case "console", "":
		return zap.NewDevelopment()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// BusPackage provides the in-process event bus.
func BusPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.Bus, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return messaging.NewBus(int64(opts.FeedBuffer), logger.Named("bus")), nil
	})
}

// StorePackage provides the event log and read-state. With the event feed
// enabled the log publishes every recorded event on the bus.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})

	do.Provide(injector, func(i *do.Injector) (shortener.EventLog, error) {
		opts := do.MustInvoke[*Options](i)
		log := store.NewMemoryEventLog()

		if !opts.EventFeed {
			return log, nil
		}

		bus := do.MustInvoke[*messaging.Bus](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return feed.NewPublishingLog(log, bus.Publisher(), logger.Named("feed")), nil
	})
}

// ServicePackage provides the command/query service.
func ServicePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*shortener.Service, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		gen, err := shortener.NewSlugGenerator(opts.SlugLength)
		if err != nil {
			return nil, err
		}

		svcOpts := []shortener.Option{
			shortener.WithSlugGenerator(gen),
			shortener.WithLogger(logger.Named("shortener")),
		}
		if opts.ValidateURL {
			svcOpts = append(svcOpts, shortener.WithURLValidation())
		}

		return shortener.NewService(
			do.MustInvoke[shortener.EventLog](i),
			do.MustInvoke[*store.MemoryStore](i),
			svcOpts...,
		)
	})
}

// FeedPackage provides the tally projection and the consumer group feeding it.
func FeedPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*feed.Tally, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		return feed.NewTally(logger.Named("tally")), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		bus := do.MustInvoke[*messaging.Bus](i)
		tally := do.MustInvoke[*feed.Tally](i)
		logger := do.MustInvoke[*zap.Logger](i)

		group := messaging.NewConsumerGroup(logger.Named("consumers"))
		for _, consumer := range tally.Consumers(bus.Subscriber(), logger.Named("consumer")) {
			group.Add(consumer)
		}

		return group, nil
	})
}

// Register wires every package into injector.
func Register(injector *do.Injector, options *Options) {
	do.ProvideValue(injector, options)
	LoggerPackage(injector)
	BusPackage(injector)
	StorePackage(injector)
	ServicePackage(injector)
	FeedPackage(injector)
}
