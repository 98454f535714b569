// Package supplier contains the Supplier reference entity.
package supplier

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrSupplierIsNotConstructed is returned when a Supplier instance was not
// created through the NewSupplier factory function.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier")

// Supplier is a vendor that orders are placed with.
type Supplier struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewSupplier creates a supplier reference. Only the name is required.
func NewSupplier(id kernel.UUID, name, email, phone, address string) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("supplier name")
	}

	return &Supplier{
		id:      id,
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Supplier was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier name.
func (s *Supplier) Name() string {
	return s.name
}

// Email returns the contact email.
func (s *Supplier) Email() string {
	return s.email
}

// Phone returns the contact phone number.
func (s *Supplier) Phone() string {
	return s.phone
}

// Address returns the postal address.
func (s *Supplier) Address() string {
	return s.address
}
