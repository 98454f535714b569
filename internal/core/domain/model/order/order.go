package order

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a purchase request placed with a supplier, the top of the
// ownership chain parcel -> delivery note -> order -> department.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a unique order number
//   - Must reference a supplier and a destination department
//   - The requester reference is optional (orders can be placed on behalf
//     of a department without a named requester)
//
// The global status is advisory (see Status); it is never derived from the
// parcels shipped against the order.
type Order struct {
	id                 kernel.UUID
	number             string
	supplierID         kernel.UUID
	departmentID       kernel.UUID
	requesterID        *kernel.UUID
	status             Status
	createdAt          time.Time
	expectedDeliveryAt *time.Time
	attachmentRef      *string
	notes              string

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the Pending status.
// The order number, supplier and destination department are required;
// the requester and expected delivery date are optional.
func NewOrder(
	id kernel.UUID,
	number string,
	supplierID, departmentID kernel.UUID,
	requesterID *kernel.UUID,
	createdAt time.Time,
	expectedDeliveryAt *time.Time,
	notes string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if err := supplierID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("supplierID", err)
	}
	if err := departmentID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("departmentID", err)
	}
	if requesterID != nil {
		if err := requesterID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("requesterID", err)
		}
	}

	return &Order{
		id:                 id,
		number:             number,
		supplierID:         supplierID,
		departmentID:       departmentID,
		requesterID:        requesterID,
		status:             Pending,
		createdAt:          createdAt,
		expectedDeliveryAt: expectedDeliveryAt,
		notes:              notes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id kernel.UUID,
	number string,
	supplierID, departmentID kernel.UUID,
	requesterID *kernel.UUID,
	status Status,
	createdAt time.Time,
	expectedDeliveryAt *time.Time,
	attachmentRef *string,
	notes string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                 id,
		number:             number,
		supplierID:         supplierID,
		departmentID:       departmentID,
		requesterID:        requesterID,
		status:             status,
		createdAt:          createdAt,
		expectedDeliveryAt: expectedDeliveryAt,
		attachmentRef:      attachmentRef,
		notes:              notes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was properly constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the unique order number.
func (o *Order) Number() string {
	return o.number
}

// SupplierID returns the supplier reference.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// DepartmentID returns the destination department reference.
// This is the department used by the visibility resolver.
func (o *Order) DepartmentID() kernel.UUID {
	return o.departmentID
}

// RequesterID returns the user on whose behalf the order was placed.
// Returns nil when no requester was named; notifications are then skipped.
func (o *Order) RequesterID() *kernel.UUID {
	return o.requesterID
}

// Status returns the advisory global status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ExpectedDeliveryAt returns the expected delivery date, if any.
func (o *Order) ExpectedDeliveryAt() *time.Time {
	return o.expectedDeliveryAt
}

// AttachmentRef returns the storage reference of the uploaded purchase
// order document, if any.
func (o *Order) AttachmentRef() *string {
	return o.attachmentRef
}

// Notes returns the free-text notes attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// MarkInProgress forces the order into InProgress. Invoked when a delivery
// note is registered against the order; this is the only automatic status
// coupling in the workflow.
func (o *Order) MarkInProgress() {
	o.status = InProgress
}

// SetStatus applies an advisory status change made by an operator.
// Any valid status is accepted; the workflow places no transition rules
// on the advisory status.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// SetAttachment records the storage reference of an uploaded document.
func (o *Order) SetAttachment(ref string) {
	o.attachmentRef = &ref
}
