// Package store defines the persistence interfaces consumed by the API
// handlers, together with the sentinel errors implementations map their
// driver errors onto. Concrete implementations live in
// internal/platform/postgres.
package store
