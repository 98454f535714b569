// Package department contains the Department reference entity, the anchor of
// the visibility chain parcel -> delivery note -> order -> department.
package department

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrDepartmentIsNotConstructed is returned when a Department instance was not
// created through the NewDepartment factory function.
var ErrDepartmentIsNotConstructed = errors.New("Department must be created via NewDepartment")

// Department is an organizational unit that orders are destined to.
type Department struct {
	id               kernel.UUID
	name             string
	deliveryLocation string

	guard guard.ConstructorGuard
}

// NewDepartment creates a department reference. The delivery location is the
// place parcels for this department are handed over at (may be empty).
func NewDepartment(id kernel.UUID, name, deliveryLocation string) (*Department, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("department name")
	}

	return &Department{
		id:               id,
		name:             name,
		deliveryLocation: deliveryLocation,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Department was properly constructed.
func (d *Department) Validate() error {
	if d == nil {
		return ErrDepartmentIsNotConstructed
	}
	return d.guard.Validate(ErrDepartmentIsNotConstructed)
}

// ID returns the department's unique identifier.
func (d *Department) ID() kernel.UUID {
	return d.id
}

// Name returns the department name, e.g. "Informatique".
func (d *Department) Name() string {
	return d.name
}

// DeliveryLocation returns where parcels for this department are delivered.
func (d *Department) DeliveryLocation() string {
	return d.deliveryLocation
}
