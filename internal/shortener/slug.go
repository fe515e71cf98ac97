package shortener

import (
	"errors"
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// DefaultSlugLength is the length of generated slugs.
const DefaultSlugLength = 8

const slugAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SlugGenerator produces candidate slugs. Uniqueness is checked by the caller.
type SlugGenerator func() string

// NewSlugGenerator returns a generator drawing length characters uniformly
// from the alphanumeric alphabet.
func NewSlugGenerator(length int) (SlugGenerator, error) {
	if length <= 0 {
		return nil, errors.New("slug generator: length must be positive")
	}

	gen, err := nanoid.CustomASCII(slugAlphabet, length)
	if err != nil {
		return nil, fmt.Errorf("slug generator: %w", err)
	}

	return SlugGenerator(gen), nil
}

// nextFreeSlug draws candidates until one is not taken.
func nextFreeSlug(generate SlugGenerator, taken func(Slug) bool) Slug {
	for {
		candidate := Slug(generate())
		if !taken(candidate) {
			return candidate
		}
	}
}
