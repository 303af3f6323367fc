package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type ContactPersonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, persons []*types.ContactPerson) ([]*types.ContactPerson, error)
	Delete(ctx context.Context, tx *gorm.DB, personIDs []uuid.UUID) error
	ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.ContactPerson, error)
}

type contactPersonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactPersonRepo(db *gorm.DB, baseLog *logger.Logger) ContactPersonRepo {
	repoLog := baseLog.With("repo", "ContactPersonRepo")
	return &contactPersonRepo{db: db, log: repoLog}
}

func (pr *contactPersonRepo) Create(ctx context.Context, tx *gorm.DB, persons []*types.ContactPerson) ([]*types.ContactPerson, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(persons) == 0 {
		return []*types.ContactPerson{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func (pr *contactPersonRepo) Delete(ctx context.Context, tx *gorm.DB, personIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(personIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", personIDs).
		Delete(&types.ContactPerson{}).Error
}

func (pr *contactPersonRepo) ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.ContactPerson, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.ContactPerson
	if len(contactIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("contact_id IN ?", contactIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
