// Package domain defines the core business entities and their validation
// rules. Entities are plain structs with explicit constructors that assign
// identifiers and timestamps; all persistence concerns live in the store
// packages.
package domain
