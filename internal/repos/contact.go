package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type ContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error)
	Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error)
	Delete(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
	GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Contact, error)
	ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Contact, error)
	SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Contact, error)
}

type contactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
	repoLog := baseLog.With("repo", "ContactRepo")
	return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.Contact) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(contacts) == 0 {
		return []*types.Contact{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (cr *contactRepo) Update(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (cr *contactRepo) Delete(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(contactIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Delete(&types.Contact{}).Error
}

func (cr *contactRepo) GetByIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Contact
	if len(contactIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Contact
	if err := transaction.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *contactRepo) SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Contact, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Contact
	if domain == "" {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("workspace_id = ? AND lower(email) LIKE ?", workspaceID, "%"+domain+"%").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
