// Package kernel provides the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - Money: fixed-point monetary amount in cents
//
// All value objects are immutable and validate themselves; a zero-value
// UUID is invalid by construction so unset identifiers are caught early.
package kernel
