package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Supplier struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Workspace   *Workspace `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkspaceID;references:ID" json:"workspace,omitempty"`

	Name    string `gorm:"not null;column:name" json:"name"`
	Email   string `gorm:"column:email;index" json:"email"`
	Phone   string `gorm:"column:phone" json:"phone"`
	Website string `gorm:"column:website" json:"website"`

	// Ports is the legacy free-text port list (semicolon-delimited); newer
	// records carry normalized SupplierPort rows instead. Both stay readable.
	Ports          string `gorm:"column:ports" json:"ports"`
	FuelTypes      string `gorm:"column:fuel_types" json:"fuel_types"`
	Regions        string `gorm:"column:regions" json:"regions"`
	Classification string `gorm:"column:classification;index" json:"classification"`
	Notes          string `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Supplier) TableName() string { return "supplier" }
