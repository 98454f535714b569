// Package services contains stateless domain services that encapsulate
// business logic spanning multiple aggregates.
//
// Domain services operate purely on domain objects passed in by their
// callers. They hold no state and perform no I/O, which keeps them
// trivially testable and free of infrastructure concerns.
package services
