package domain

import "github.com/gosimple/slug"

// Slugify maps a display name or title to its canonical URL-safe form:
// lowercased, diacritics transliterated, punctuation dropped and
// whitespace collapsed to single hyphens.
//
// It must be called identically at create and update time so that
// stored slugs and query-time-derived slugs always match byte for byte.
func Slugify(s string) string {
	return slug.Make(s)
}
