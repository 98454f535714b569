package departmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parceltrack/internal/core/domain/model/department"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// GormDepartmentRepository implements DepartmentRepository using GORM.
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GORM department repository.
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Add saves a new department to the database.
func (r *GormDepartmentRepository) Add(ctx context.Context, d *department.Department) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a department by ID.
func (r *GormDepartmentRepository) Get(ctx context.Context, id kernel.UUID) (*department.Department, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepartmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("department", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every department, ordered by name.
func (r *GormDepartmentRepository) GetAll(ctx context.Context) ([]*department.Department, error) {
	var dtos []DepartmentDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	departments := make([]*department.Department, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	return departments, nil
}
