// Package services contains stateless domain services that operate across
// aggregates. The line builder turns requested (product, quantity) pairs into
// priced order lines against a catalog snapshot, keeping pricing policy out of
// both the aggregates and the application layer.
package services
