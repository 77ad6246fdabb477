package domain

import (
	"fmt"
	"strconv"
)

// Identifier is a route parameter resolved once into either a numeric
// primary key or a slug. Handlers pass the resolved value downward
// instead of re-inspecting the raw string at each call site.
type Identifier struct {
	id      int64
	slug    string
	numeric bool
}

// NumericIdentifier builds an ID-mode identifier. Intended for tests
// and internal callers that already hold a primary key.
func NumericIdentifier(id int64) Identifier {
	return Identifier{id: id, numeric: true}
}

// SlugIdentifier builds a slug-mode identifier.
func SlugIdentifier(slug string) Identifier {
	return Identifier{slug: slug}
}

// ResolveIdentifier classifies a raw route parameter. A string that
// parses fully as an integer is a numeric ID, everything else is a
// slug. maxSlugLen is the owning entity's name/title maximum; longer
// slug-mode strings are rejected before any query runs.
//
// The returned message list is empty when the identifier is usable.
func ResolveIdentifier(raw string, maxSlugLen int) (Identifier, []string) {
	if raw == "" {
		return Identifier{}, []string{"The ID or slug can't be undefined."}
	}

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if id < 1 {
			return Identifier{}, []string{"The ID can't be lesser than 1."}
		}
		return Identifier{id: id, numeric: true}, nil
	}

	if len(raw) > maxSlugLen {
		return Identifier{}, []string{
			fmt.Sprintf("The slug is too long (must have a maximum of %d characters).", maxSlugLen),
		}
	}
	return Identifier{slug: raw}, nil
}

// IsNumeric reports whether the identifier denotes a primary key.
func (i Identifier) IsNumeric() bool { return i.numeric }

// ID returns the numeric primary key. Zero in slug mode.
func (i Identifier) ID() int64 { return i.id }

// Slug returns the slug string. Empty in ID mode.
func (i Identifier) Slug() string { return i.slug }

// String renders the identifier for logging.
func (i Identifier) String() string {
	if i.numeric {
		return strconv.FormatInt(i.id, 10)
	}
	return i.slug
}
