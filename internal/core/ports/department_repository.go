package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/department"
	"parceltrack/internal/core/domain/model/kernel"
)

// DepartmentRepository defines the persistence contract for departments.
type DepartmentRepository interface {
	// Add persists a new department.
	Add(ctx context.Context, d *department.Department) error

	// Get retrieves a department by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*department.Department, error)

	// GetAll retrieves every department, ordered by name.
	GetAll(ctx context.Context) ([]*department.Department, error)
}
