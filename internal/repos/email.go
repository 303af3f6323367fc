package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type EmailRepo interface {
	Create(ctx context.Context, tx *gorm.DB, emails []*types.Email) ([]*types.Email, error)
	Delete(ctx context.Context, tx *gorm.DB, emailIDs []uuid.UUID) error
	ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Email, error)
}

type emailRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmailRepo(db *gorm.DB, baseLog *logger.Logger) EmailRepo {
	repoLog := baseLog.With("repo", "EmailRepo")
	return &emailRepo{db: db, log: repoLog}
}

func (er *emailRepo) Create(ctx context.Context, tx *gorm.DB, emails []*types.Email) ([]*types.Email, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(emails) == 0 {
		return []*types.Email{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

func (er *emailRepo) Delete(ctx context.Context, tx *gorm.DB, emailIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(emailIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", emailIDs).
		Delete(&types.Email{}).Error
}

func (er *emailRepo) ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Email, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Email
	if len(contactIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("contact_id IN ?", contactIDs).
		Order("date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
