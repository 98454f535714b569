package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	// Add persists a new supplier.
	Add(ctx context.Context, s *supplier.Supplier) error

	// Get retrieves a supplier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// GetAll retrieves every supplier, ordered by name.
	GetAll(ctx context.Context) ([]*supplier.Supplier, error)
}
