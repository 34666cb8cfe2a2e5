// Package api provides the HTTP handlers for the API: authentication
// endpoints and the per-user task resource. Handlers validate untrusted
// input against typed request schemas, delegate persistence to the store
// interfaces, and serialize results (or sanitized errors) as JSON.
package api
