// Package api contains the HTTP handlers. Each mutating handler is a
// sequential pipeline: resolve the identifier, run the synchronous
// field validators, run the asynchronous existence and uniqueness
// checks, and only when the accumulated error list is empty issue the
// single mutating query.
//
// The uniqueness check and the write are deliberately not wrapped in
// one transaction, matching the platform's documented behavior: two
// concurrent creates with the same intended slug can both pass the
// check before either insert commits.
package api
