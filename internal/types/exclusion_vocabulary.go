package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExclusionVocabulary holds the per-user set of lowercase terms that never
// drive a bulk-search match. It is read once per matching session and written
// back whole; Version increases on every write so callers can notice a stale
// copy.
type ExclusionVocabulary struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User      *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Terms     datatypes.JSON `gorm:"type:jsonb;column:terms" json:"terms"`
	Version   int64          `gorm:"column:version;not null;default:0" json:"version"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (ExclusionVocabulary) TableName() string { return "exclusion_vocabulary" }
