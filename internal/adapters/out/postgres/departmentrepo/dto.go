package departmentrepo

import (
	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/department"
	"parceltrack/internal/core/domain/model/kernel"
)

// DepartmentDTO is the GORM data transfer object for departments.
type DepartmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null;uniqueIndex"`
	DeliveryLocation string
}

// TableName returns the database table name for departments.
func (DepartmentDTO) TableName() string {
	return "departments"
}

func fromDomain(d *department.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:               d.ID().Bytes(),
		Name:             d.Name(),
		DeliveryLocation: d.DeliveryLocation(),
	}
}

func toDomain(dto DepartmentDTO) (*department.Department, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return department.NewDepartment(id, dto.Name, dto.DeliveryLocation)
}
