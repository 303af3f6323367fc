package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task belongs to either a contact or a supplier, never both.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Workspace   *Workspace `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkspaceID;references:ID" json:"workspace,omitempty"`
	ContactID   *uuid.UUID `gorm:"type:uuid;index" json:"contact_id,omitempty"`
	Contact     *Contact   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"contact,omitempty"`
	SupplierID  *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier    *Supplier  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SupplierID;references:ID" json:"supplier,omitempty"`

	Title       string     `gorm:"not null;column:title" json:"title"`
	Notes       string     `gorm:"column:notes" json:"notes"`
	DueDate     *time.Time `gorm:"column:due_date;index" json:"due_date,omitempty"`
	Completed   bool       `gorm:"column:completed;default:false" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Task) TableName() string { return "task" }
