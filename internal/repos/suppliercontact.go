package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type SupplierContactRepo interface {
	Create(ctx context.Context, tx *gorm.DB, contacts []*types.SupplierContact) ([]*types.SupplierContact, error)
	Delete(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error
	ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierContact, error)
}

type supplierContactRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierContactRepo(db *gorm.DB, baseLog *logger.Logger) SupplierContactRepo {
	repoLog := baseLog.With("repo", "SupplierContactRepo")
	return &supplierContactRepo{db: db, log: repoLog}
}

func (scr *supplierContactRepo) Create(ctx context.Context, tx *gorm.DB, contacts []*types.SupplierContact) ([]*types.SupplierContact, error) {
	transaction := tx
	if transaction == nil {
		transaction = scr.db
	}
	if len(contacts) == 0 {
		return []*types.SupplierContact{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (scr *supplierContactRepo) Delete(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = scr.db
	}
	if len(contactIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", contactIDs).
		Delete(&types.SupplierContact{}).Error
}

func (scr *supplierContactRepo) ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierContact, error) {
	transaction := tx
	if transaction == nil {
		transaction = scr.db
	}
	var results []*types.SupplierContact
	if len(supplierIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("supplier_id IN ?", supplierIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
