package shortener

import "errors"

var (
	// ErrInvalidURL is returned when URL validation is enabled and the
	// destination is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrSlugAlreadyInUse is returned when a caller-supplied slug is taken.
	ErrSlugAlreadyInUse = errors.New("slug already in use")

	// ErrSlugNotFound is returned when no link exists for a slug.
	ErrSlugNotFound = errors.New("slug not found")
)
