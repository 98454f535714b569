package commands

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a purchase order.
// Orders anchor the ownership chain that parcels resolve their department
// and requester through.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	number             string
	supplierID         kernel.UUID
	departmentID       kernel.UUID
	requesterID        *kernel.UUID
	expectedDeliveryAt *time.Time
	notes              string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order.
// The requester is optional: orders placed on behalf of a department as a
// whole carry no individual requester.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	supplierID, departmentID kernel.UUID,
	requesterID *kernel.UUID,
	expectedDeliveryAt *time.Time,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNumber(number),
		cmd.setSupplierID(supplierID),
		cmd.setDepartmentID(departmentID),
		cmd.setRequesterID(requesterID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.expectedDeliveryAt = expectedDeliveryAt
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the human-facing order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// SupplierID returns the supplier the order is placed with.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// DepartmentID returns the ordering department.
func (c CreateOrderCommand) DepartmentID() kernel.UUID {
	return c.departmentID
}

// RequesterID returns the requesting user, or nil.
func (c CreateOrderCommand) RequesterID() *kernel.UUID {
	return c.requesterID
}

// ExpectedDeliveryAt returns the expected delivery date, or nil.
func (c CreateOrderCommand) ExpectedDeliveryAt() *time.Time {
	return c.expectedDeliveryAt
}

// Notes returns the free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("supplierID", err)
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setDepartmentID(departmentID kernel.UUID) error {
	if err := departmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("departmentID", err)
	}

	c.departmentID = departmentID
	return nil
}

func (c *CreateOrderCommand) setRequesterID(requesterID *kernel.UUID) error {
	if requesterID == nil {
		return nil
	}
	if err := requesterID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("requesterID", err)
	}

	c.requesterID = requesterID
	return nil
}
