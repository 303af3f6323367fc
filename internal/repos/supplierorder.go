package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type SupplierOrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orders []*types.SupplierOrder) ([]*types.SupplierOrder, error)
	Delete(ctx context.Context, tx *gorm.DB, orderIDs []uuid.UUID) error
	ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierOrder, error)
}

type supplierOrderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierOrderRepo(db *gorm.DB, baseLog *logger.Logger) SupplierOrderRepo {
	repoLog := baseLog.With("repo", "SupplierOrderRepo")
	return &supplierOrderRepo{db: db, log: repoLog}
}

func (or *supplierOrderRepo) Create(ctx context.Context, tx *gorm.DB, orders []*types.SupplierOrder) ([]*types.SupplierOrder, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if len(orders) == 0 {
		return []*types.SupplierOrder{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (or *supplierOrderRepo) Delete(ctx context.Context, tx *gorm.DB, orderIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if len(orderIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", orderIDs).
		Delete(&types.SupplierOrder{}).Error
}

func (or *supplierOrderRepo) ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierOrder, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.SupplierOrder
	if len(supplierIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("supplier_id IN ?", supplierIDs).
		Order("date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
