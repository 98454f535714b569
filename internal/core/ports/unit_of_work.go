package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle, typically Begin followed by a deferred Rollback and a Commit
// on the success path.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// DeliveryNoteRepository returns a DeliveryNoteRepository bound to the current transaction.
	DeliveryNoteRepository() DeliveryNoteRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AuditRepository returns an AuditRepository bound to the current transaction.
	AuditRepository() AuditRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// DepartmentRepository returns a DepartmentRepository bound to the current transaction.
	DepartmentRepository() DepartmentRepository

	// SupplierRepository returns a SupplierRepository bound to the current transaction.
	SupplierRepository() SupplierRepository
}
