// Package services provides stateless domain services that operate across
// aggregates: the PricingEngine computing an order's money breakdown from
// menu item snapshots, and the JobMatcher computing job offers with
// distances and estimated earnings for available drivers. Both are pure
// computations over inputs loaded by the application layer.
package services
