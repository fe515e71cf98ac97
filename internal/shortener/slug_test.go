package shortener_test

import (
	"testing"

	"github.com/serroba/linkledger/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlugGenerator(t *testing.T) {
	t.Run("produces alphanumeric slugs of the requested length", func(t *testing.T) {
		gen, err := shortener.NewSlugGenerator(12)
		require.NoError(t, err)

		for range 100 {
			assert.Regexp(t, `^[A-Za-z0-9]{12}$`, gen())
		}
	})

	t.Run("produces distinct slugs", func(t *testing.T) {
		gen, err := shortener.NewSlugGenerator(shortener.DefaultSlugLength)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for range 1000 {
			seen[gen()] = struct{}{}
		}

		assert.Len(t, seen, 1000)
	})

	t.Run("rejects a non-positive length", func(t *testing.T) {
		_, err := shortener.NewSlugGenerator(0)

		assert.Error(t, err)
	})
}

func TestValidateURL(t *testing.T) {
	t.Run("accepts http and https urls", func(t *testing.T) {
		require.NoError(t, shortener.ValidateURL("https://example.com/a"))
		require.NoError(t, shortener.ValidateURL("http://example.com:8080/path?q=1"))
	})

	t.Run("rejects relative, hostless and non-web urls", func(t *testing.T) {
		for _, raw := range []shortener.URL{"", "example.com", "/path", "https://", "mailto:a@b.c", "ftp://example.com"} {
			assert.ErrorIs(t, shortener.ValidateURL(raw), shortener.ErrInvalidURL, raw)
		}
	})
}
