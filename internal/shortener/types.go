package shortener

// Slug is the short alias identifying a link.
type Slug string

// URL is the destination a slug redirects to.
type URL string

// ShortLink pairs a slug with its current destination.
type ShortLink struct {
	Slug Slug
	URL  URL
}

// Stats reports a link together with the number of redirects it has served.
type Stats struct {
	Link      ShortLink
	Redirects uint64
}
