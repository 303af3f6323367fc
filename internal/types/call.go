package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Call struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContactID uuid.UUID      `gorm:"type:uuid;not null;index" json:"contact_id"`
	Contact   *Contact       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"contact,omitempty"`
	Date      time.Time      `gorm:"not null;column:date;index" json:"date"`
	Notes     string         `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Call) TableName() string { return "call" }
