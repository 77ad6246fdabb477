// Package domain defines the core entities of the blogging platform
// (users, categories, articles, commentaries) together with the pure
// building blocks the HTTP handlers compose: the slug generator, the
// identifier resolver and the per-entity field validators.
//
// Validators accumulate human-readable error messages instead of
// returning on the first failure; every applicable rule for every field
// is evaluated and the resulting messages are returned together, in
// field order. The messages are part of the public API contract and are
// asserted verbatim by the tests.
package domain
