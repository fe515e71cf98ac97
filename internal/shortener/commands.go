package shortener

import "context"

// CreateShortLink maps url to slug, generating a fresh slug when slug is empty.
func (s *Service) CreateShortLink(ctx context.Context, url URL, slug Slug) (ShortLink, error) {
	if err := s.checkURL(url); err != nil {
		return ShortLink{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slug == "" {
		slug = nextFreeSlug(s.generateSlug, s.taken)
	} else if s.taken(slug) {
		return ShortLink{}, ErrSlugAlreadyInUse
	}

	if _, err := s.record(ctx, NewLinkCreated(slug, url, s.now())); err != nil {
		return ShortLink{}, err
	}

	return ShortLink{Slug: slug, URL: url}, nil
}

// Redirect counts one redirect through slug and returns its current link.
func (s *Service) Redirect(ctx context.Context, slug Slug) (ShortLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	url, ok := s.links.Get(slug)
	if !ok {
		return ShortLink{}, ErrSlugNotFound
	}

	if _, err := s.record(ctx, NewLinkRedirected(slug, s.now())); err != nil {
		return ShortLink{}, err
	}

	return ShortLink{Slug: slug, URL: url}, nil
}

// ChangeShortLink points an existing slug at newURL. The redirect count is kept.
func (s *Service) ChangeShortLink(ctx context.Context, slug Slug, newURL URL) (ShortLink, error) {
	if err := s.checkURL(newURL); err != nil {
		return ShortLink{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.taken(slug) {
		return ShortLink{}, ErrSlugNotFound
	}

	if _, err := s.record(ctx, NewLinkCreated(slug, newURL, s.now())); err != nil {
		return ShortLink{}, err
	}

	return ShortLink{Slug: slug, URL: newURL}, nil
}

func (s *Service) taken(slug Slug) bool {
	_, ok := s.links.Get(slug)

	return ok
}
