package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type SupplierPortRepo interface {
	Create(ctx context.Context, tx *gorm.DB, ports []*types.SupplierPort) ([]*types.SupplierPort, error)
	Delete(ctx context.Context, tx *gorm.DB, portIDs []uuid.UUID) error
	ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierPort, error)
}

type supplierPortRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierPortRepo(db *gorm.DB, baseLog *logger.Logger) SupplierPortRepo {
	repoLog := baseLog.With("repo", "SupplierPortRepo")
	return &supplierPortRepo{db: db, log: repoLog}
}

func (spr *supplierPortRepo) Create(ctx context.Context, tx *gorm.DB, ports []*types.SupplierPort) ([]*types.SupplierPort, error) {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	if len(ports) == 0 {
		return []*types.SupplierPort{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&ports).Error; err != nil {
		return nil, err
	}
	return ports, nil
}

func (spr *supplierPortRepo) Delete(ctx context.Context, tx *gorm.DB, portIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	if len(portIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", portIDs).
		Delete(&types.SupplierPort{}).Error
}

func (spr *supplierPortRepo) ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierPort, error) {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	var results []*types.SupplierPort
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
