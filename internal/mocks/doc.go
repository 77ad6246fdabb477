// Package mocks provides hand-rolled store and service mocks for
// handler tests. Each mock keeps rows in memory and offers function
// fields to override individual behaviors.
package mocks
