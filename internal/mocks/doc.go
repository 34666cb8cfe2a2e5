// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes function fields that tests can
// set to customize behavior, with a simple in-memory default when the
// field is nil.
package mocks
