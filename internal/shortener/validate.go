package shortener

import (
	"net/url"
	"strings"
)

// ValidateURL reports whether raw is an absolute http or https URL with a host.
func ValidateURL(raw URL) error {
	u, err := url.ParseRequestURI(string(raw))
	if err != nil {
		return ErrInvalidURL
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ErrInvalidURL
	}

	if u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}
