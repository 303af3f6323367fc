package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactPerson is a PIC (person in charge) attached to a contact.
type ContactPerson struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContactID uuid.UUID      `gorm:"type:uuid;not null;index" json:"contact_id"`
	Contact   *Contact       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ContactID;references:ID" json:"contact,omitempty"`
	Name      string         `gorm:"not null;column:name" json:"name"`
	Role      string         `gorm:"column:role" json:"role"`
	Email     string         `gorm:"column:email" json:"email"`
	Phone     string         `gorm:"column:phone" json:"phone"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ContactPerson) TableName() string { return "contact_person" }
