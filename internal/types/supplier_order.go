package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierOrder struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier   *Supplier      `gorm:"constraint:OnDelete:CASCADE;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	Date       time.Time      `gorm:"not null;column:date;index" json:"date"`
	Port       string         `gorm:"column:port" json:"port"`
	FuelType   string         `gorm:"column:fuel_type" json:"fuel_type"`
	QuantityMT float64        `gorm:"column:quantity_mt" json:"quantity_mt"`
	Notes      string         `gorm:"column:notes" json:"notes"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SupplierOrder) TableName() string { return "supplier_order" }
