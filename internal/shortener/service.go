package shortener

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CommandHandler mutates link state and records the resulting events.
type CommandHandler interface {
	CreateShortLink(ctx context.Context, url URL, slug Slug) (ShortLink, error)
	Redirect(ctx context.Context, slug Slug) (ShortLink, error)
	ChangeShortLink(ctx context.Context, slug Slug, newURL URL) (ShortLink, error)
}

// QueryHandler reads link state without side effects.
type QueryHandler interface {
	GetStats(ctx context.Context, slug Slug) (Stats, error)
}

// Service owns the event log and the read-state derived from it.
// A single lock guards both so each command applies fully or not at all.
type Service struct {
	mu           sync.RWMutex
	log          EventLog
	links        ReadStore
	generateSlug SlugGenerator
	validateURLs bool
	now          func() time.Time
	logger       *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSlugGenerator replaces the random slug generator.
func WithSlugGenerator(gen SlugGenerator) Option {
	return func(s *Service) {
		s.generateSlug = gen
	}
}

// WithURLValidation makes create and change reject malformed URLs with ErrInvalidURL.
func WithURLValidation() Option {
	return func(s *Service) {
		s.validateURLs = true
	}
}

// WithClock sets the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a service over the given log and read-state.
func NewService(log EventLog, links ReadStore, opts ...Option) (*Service, error) {
	s := &Service{
		log:    log,
		links:  links,
		now:    time.Now,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.generateSlug == nil {
		gen, err := NewSlugGenerator(DefaultSlugLength)
		if err != nil {
			return nil, err
		}

		s.generateSlug = gen
	}

	return s, nil
}

// record appends event and folds it into the read-state. Callers hold s.mu.
func (s *Service) record(ctx context.Context, event Event) (Event, error) {
	recorded, err := s.log.Append(ctx, event)
	if err != nil {
		return Event{}, fmt.Errorf("append %s event: %w", event.Kind, err)
	}

	s.links.Apply(recorded)

	s.logger.Debug("event recorded",
		zap.String("kind", string(recorded.Kind)),
		zap.String("slug", string(recorded.Slug)),
		zap.Uint64("sequence", recorded.Sequence),
	)

	return recorded, nil
}

func (s *Service) checkURL(url URL) error {
	if !s.validateURLs {
		return nil
	}

	return ValidateURL(url)
}

var (
	_ CommandHandler = (*Service)(nil)
	_ QueryHandler   = (*Service)(nil)
)
