package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type CallRepo interface {
	Create(ctx context.Context, tx *gorm.DB, calls []*types.Call) ([]*types.Call, error)
	Delete(ctx context.Context, tx *gorm.DB, callIDs []uuid.UUID) error
	ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Call, error)
}

type callRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCallRepo(db *gorm.DB, baseLog *logger.Logger) CallRepo {
	repoLog := baseLog.With("repo", "CallRepo")
	return &callRepo{db: db, log: repoLog}
}

func (cr *callRepo) Create(ctx context.Context, tx *gorm.DB, calls []*types.Call) ([]*types.Call, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(calls) == 0 {
		return []*types.Call{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

func (cr *callRepo) Delete(ctx context.Context, tx *gorm.DB, callIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(callIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", callIDs).
		Delete(&types.Call{}).Error
}

func (cr *callRepo) ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.Call, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Call
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
