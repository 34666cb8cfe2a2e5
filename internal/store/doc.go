// Package store defines the persistence interfaces and sentinel errors used
// by the rest of the application. Implementations live under
// internal/platform; callers depend only on the interfaces defined here so
// that storage backends can be swapped and handlers can be tested with
// in-memory fakes.
package store
