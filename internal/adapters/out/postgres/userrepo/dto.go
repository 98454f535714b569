package userrepo

import (
	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/domain/model/kernel"
)

// UserDTO is the GORM data transfer object for users.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	FirstName    string
	LastName     string
	Role         string     `gorm:"not null;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	Active       bool       `gorm:"not null;default:true"`
}

// TableName returns the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) UserDTO {
	var departmentID *uuid.UUID
	if u.DepartmentID() != nil {
		id := u.DepartmentID().Bytes()
		departmentID = &id
	}

	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Role:         u.Role().String(),
		DepartmentID: departmentID,
		Active:       u.IsActive(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var departmentID *kernel.UUID
	if dto.DepartmentID != nil {
		did, err := kernel.UUIDFromBytes(dto.DepartmentID[:])
		if err != nil {
			return nil, err
		}
		departmentID = &did
	}

	return account.NewUser(id, dto.Email, dto.FirstName, dto.LastName, role, departmentID, dto.Active)
}
