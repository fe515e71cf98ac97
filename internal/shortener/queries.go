package shortener

import "context"

// GetStats returns the current link for slug and how often it was redirected.
func (s *Service) GetStats(_ context.Context, slug Slug) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	url, ok := s.links.Get(slug)
	if !ok {
		return Stats{}, ErrSlugNotFound
	}

	return Stats{
		Link:      ShortLink{Slug: slug, URL: url},
		Redirects: s.links.Redirects(slug),
	}, nil
}

// Events returns a copy of the recorded event log.
func (s *Service) Events(ctx context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.log.Events(ctx)
}
