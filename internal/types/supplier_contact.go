package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierContact struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier   *Supplier      `gorm:"constraint:OnDelete:CASCADE;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	Name       string         `gorm:"not null;column:name" json:"name"`
	Role       string         `gorm:"column:role" json:"role"`
	Email      string         `gorm:"column:email" json:"email"`
	Phone      string         `gorm:"column:phone" json:"phone"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SupplierContact) TableName() string { return "supplier_contact" }
