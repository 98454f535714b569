package parcel

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the correct tracking workflow.
//
// State transitions:
//
//	Awaited ──> Received ──> InDistribution ──> Delivered (terminal)
//	   │            │              │
//	   └────────────┴──────┬───────┘
//	                       v
//	                    Problem ──> Awaited | Received | InDistribution
//
// Problem is a side-channel state reachable from any non-terminal status;
// resolving a problem puts the parcel back into one of the active statuses.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. The string values
// ("awaited", "received", "in_distribution", "delivered", "problem") are
// part of the external contract and must be preserved exactly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Awaited is the initial status when a parcel is registered under a
	// delivery note but has not physically arrived yet.
	Awaited

	// Received indicates the parcel has arrived and is stored at a known
	// location. This is the only status in which a storage location is set.
	Received

	// InDistribution indicates the parcel is on its way to the destination
	// department.
	InDistribution

	// Delivered indicates the parcel was handed over to its recipient.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Problem indicates an anomaly was flagged on the parcel (unknown
	// recipient, damaged packaging, ...). It must be resolved back into
	// one of the active statuses before the parcel can progress.
	Problem
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Awaited:        "awaited",
		Received:       "received",
		InDistribution: "in_distribution",
		Delivered:      "delivered",
		Problem:        "problem",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Awaited:        "awaited",
		Received:       "received",
		InDistribution: "in_distribution",
		Delivered:      "delivered",
		Problem:        "problem",
	}
}

// StatusFromString parses a Status from its external string representation.
// Returns an error for any string that is not one of the five valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Awaited, Received, InDistribution, Delivered, Problem.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the external name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status is one of the non-terminal,
// non-problem states (Awaited, Received, InDistribution). Only active
// statuses may be flagged with a problem, and a resolved problem may
// only return to an active status.
func (s Status) IsActive() bool {
	return s == Awaited || s == Received || s == InDistribution
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateTransitionTo checks whether the state machine allows moving from
// the current status to the target status.
//
// Allowed transitions:
//   - Awaited -> Received
//   - Received -> InDistribution
//   - InDistribution -> Delivered
//   - Awaited | Received | InDistribution -> Problem
//   - Problem -> Awaited | Received | InDistribution
//
// This check is only consulted when the lifecycle engine runs with strict
// transitions enabled; the permissive baseline applies transitions
// unconditionally. Returns nil if the transition is allowed, or a
// descriptive error otherwise.
func (s Status) ValidateTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	allowed := false
	switch target {
	case Received:
		allowed = s == Awaited
	case InDistribution:
		allowed = s == Received
	case Delivered:
		allowed = s == InDistribution
	case Problem:
		allowed = s.IsActive()
	case Awaited, Unknown:
		// Awaited is only reachable again through problem resolution,
		// which is validated by Parcel.ResolveProblem.
		allowed = false
	}

	if s == Problem && target.IsActive() {
		allowed = true
	}

	if !allowed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to go to %s", s, target),
		)
	}
	return nil
}
