// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit notification dispatch.
package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// DeliveryNoteRepoFactory provides access to the delivery note repository within a transaction.
	DeliveryNoteRepoFactory interface {
		DeliveryNoteRepository() ports.DeliveryNoteRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DepartmentRepoFactory provides access to the department repository within a transaction.
	DepartmentRepoFactory interface {
		DepartmentRepository() ports.DepartmentRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// LifecycleUoW manages transactions for parcel lifecycle operations.
	// Every status change writes the parcel and its audit entry atomically;
	// delivery additionally resolves the destination through the owner chain.
	LifecycleUoW interface {
		TxManager
		ParcelRepoFactory
		AuditRepoFactory
		DeliveryNoteRepoFactory
		OrderRepoFactory
		DepartmentRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryNoteUoW manages transactions for delivery note registration,
	// which creates the note, its awaited parcels, and advances the order.
	DeliveryNoteUoW interface {
		TxManager
		DeliveryNoteRepoFactory
		ParcelRepoFactory
		OrderRepoFactory
	}

	// DeliveryNoteUoWFactory creates new delivery note unit of work instances.
	DeliveryNoteUoWFactory interface {
		Create() DeliveryNoteUoW
	}

	// NotificationUoW manages transactions for notification read-state changes.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// Notifier interfaces decouple command handlers from the dispatcher.
// Dispatch runs after the command's transaction has committed and is best
// effort, so the methods report nothing back.
type (
	// StatusNotifier notifies interested users about a parcel status change.
	StatusNotifier interface {
		NotifyStatusChange(ctx context.Context, p *parcel.Parcel, description string)
	}

	// OrderNotifier notifies parcel managers about a newly registered order.
	OrderNotifier interface {
		NotifyNewOrder(ctx context.Context, o *order.Order)
	}
)
