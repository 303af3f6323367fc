package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierPort is the normalized replacement for Supplier.Ports, one row per
// port with the delivery modes the supplier can serve there.
type SupplierPort struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier   *Supplier      `gorm:"constraint:OnDelete:CASCADE;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`
	Name       string         `gorm:"not null;column:name;index" json:"name"`
	Truck      bool           `gorm:"column:truck;default:false" json:"truck"`
	Barge      bool           `gorm:"column:barge;default:false" json:"barge"`
	ExPipe     bool           `gorm:"column:ex_pipe;default:false" json:"ex_pipe"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SupplierPort) TableName() string { return "supplier_port" }
