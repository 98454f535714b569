package supplierrepo

import (
	"github.com/google/uuid"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/supplier"
)

// SupplierDTO is the GORM data transfer object for suppliers.
type SupplierDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"not null;uniqueIndex"`
	Email   string
	Phone   string
	Address string
}

// TableName returns the database table name for suppliers.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

func fromDomain(s *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:      s.ID().Bytes(),
		Name:    s.Name(),
		Email:   s.Email(),
		Phone:   s.Phone(),
		Address: s.Address(),
	}
}

func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return supplier.NewSupplier(id, dto.Name, dto.Email, dto.Phone, dto.Address)
}
