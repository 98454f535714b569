package order

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the global state of an order.
//
// The order status is advisory: it is maintained by hand through the order
// workflow and is NOT derived from the statuses of the parcels shipped
// against the order. The single automatic coupling is that registering a
// delivery note forces the order into InProgress.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Approved indicates the order was validated and is awaiting shipment.
	Approved

	// Rejected indicates the order was refused during validation.
	Rejected

	// InProgress indicates at least one delivery note was registered
	// against the order.
	InProgress

	// Received indicates all expected parcels were delivered.
	Received

	// Cancelled indicates the order was abandoned.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Approved:   "approved",
		Rejected:   "rejected",
		InProgress: "in_progress",
		Received:   "received",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Approved:   "approved",
		Rejected:   "rejected",
		InProgress: "in_progress",
		Received:   "received",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a Status from its external string representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the external name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
