// Package order contains the Order entity and its advisory status enum.
//
// An order is a purchase request placed with a supplier for a destination
// department, optionally on behalf of a named requester. Orders own delivery
// notes (partial shipments), which in turn own parcels; the visibility
// resolver and the notification dispatcher both walk this chain upward.
package order
