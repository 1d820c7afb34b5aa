// Package kernel contains shared value objects used across all domain models.
// These are the building blocks of the domain layer: small, immutable,
// self-validating types with no dependencies on any aggregate.
package kernel
