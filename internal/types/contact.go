package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Priority ranks run 0..5; 0 is the "Client" tier. A contact with no rank
// assigned sorts and filters after every ranked contact.
const (
	PriorityClientTier = 0
	PriorityMaxRank    = 5
	// PriorityUnranked is the sentinel used when PriorityRank is nil.
	PriorityUnranked = 999
)

type Contact struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Workspace   *Workspace `gorm:"constraint:OnDelete:CASCADE;foreignKey:WorkspaceID;references:ID" json:"workspace,omitempty"`

	Name        string         `gorm:"not null;column:name" json:"name"`
	Company     string         `gorm:"column:company" json:"company"`
	Email       string         `gorm:"column:email;index" json:"email"`
	ExtraEmails datatypes.JSON `gorm:"type:jsonb;column:extra_emails" json:"extra_emails,omitempty"`
	Phone       string         `gorm:"column:phone" json:"phone"`
	Mobile      string         `gorm:"column:mobile" json:"mobile"`
	Address     string         `gorm:"column:address" json:"address"`
	City        string         `gorm:"column:city" json:"city"`
	Postcode    string         `gorm:"column:postcode" json:"postcode"`
	Website     string         `gorm:"column:website" json:"website"`
	Country     string         `gorm:"column:country" json:"country"`
	Timezone    string         `gorm:"column:timezone" json:"timezone"`

	PriorityRank *int `gorm:"column:priority_rank" json:"priority_rank,omitempty"`

	// The four status flags are displayable together; each carries an
	// optional note and the time it was set.
	IsClient     bool       `gorm:"column:is_client;default:false" json:"is_client"`
	ClientNote   string     `gorm:"column:client_note" json:"client_note"`
	ClientAt     *time.Time `gorm:"column:client_at" json:"client_at,omitempty"`
	HasTraction  bool       `gorm:"column:has_traction;default:false" json:"has_traction"`
	TractionNote string     `gorm:"column:traction_note" json:"traction_note"`
	TractionAt   *time.Time `gorm:"column:traction_at" json:"traction_at,omitempty"`
	IsJammed     bool       `gorm:"column:is_jammed;default:false" json:"is_jammed"`
	JammedNote   string     `gorm:"column:jammed_note" json:"jammed_note"`
	JammedAt     *time.Time `gorm:"column:jammed_at" json:"jammed_at,omitempty"`
	IsDead       bool       `gorm:"column:is_dead;default:false" json:"is_dead"`
	DeadNote     string     `gorm:"column:dead_note" json:"dead_note"`
	DeadAt       *time.Time `gorm:"column:dead_at" json:"dead_at,omitempty"`

	ReminderDays *int       `gorm:"column:reminder_days" json:"reminder_days,omitempty"`
	FollowUpDate *time.Time `gorm:"column:follow_up_date" json:"follow_up_date,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Contact) TableName() string { return "contact" }
