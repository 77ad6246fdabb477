package postgres

import (
	"fmt"

	"github.com/inkwell-api/inkwell/internal/domain"
)

// wherePredicate renders the identifier's lookup predicate, excluding
// soft-deleted rows. argN is the 1-based placeholder index the bound
// value should use.
func wherePredicate(ident domain.Identifier, argN int) (string, any) {
	if ident.IsNumeric() {
		return fmt.Sprintf("id = $%d AND is_deleted = FALSE", argN), ident.ID()
	}
	return fmt.Sprintf("slug = $%d AND is_deleted = FALSE", argN), ident.Slug()
}

// excludePredicate renders the self-exclusion predicate used when
// re-checking slug uniqueness on updates, so a row is never flagged as
// colliding with itself. It is deliberately not soft-delete filtered.
func excludePredicate(ident domain.Identifier, argN int) (string, any) {
	if ident.IsNumeric() {
		return fmt.Sprintf("id <> $%d", argN), ident.ID()
	}
	return fmt.Sprintf("slug <> $%d", argN), ident.Slug()
}
