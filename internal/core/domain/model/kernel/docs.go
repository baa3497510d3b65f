// Package kernel provides core domain primitives for the food-delivery system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point currency amount with two decimal places
//   - GeoPoint: A value object for geographic coordinates with great-circle distance
//   - Actor: The authenticated identity and role performing an operation
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
