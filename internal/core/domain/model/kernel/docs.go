// Package kernel contains shared value objects used across the domain model.
//
// The package provides:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: exact decimal monetary value with two fraction digits
//
// All value objects are immutable, compare by value, and must be created
// through their constructor functions; zero values fail Validate. This keeps
// aggregates from ever holding an unvalidated identity or amount.
package kernel
