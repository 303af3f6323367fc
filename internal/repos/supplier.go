package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type SupplierRepo interface {
	Create(ctx context.Context, tx *gorm.DB, suppliers []*types.Supplier) ([]*types.Supplier, error)
	Update(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) (*types.Supplier, error)
	Delete(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) error
	GetByIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.Supplier, error)
	ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Supplier, error)
	SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Supplier, error)
}

type supplierRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	repoLog := baseLog.With("repo", "SupplierRepo")
	return &supplierRepo{db: db, log: repoLog}
}

func (sr *supplierRepo) Create(ctx context.Context, tx *gorm.DB, suppliers []*types.Supplier) ([]*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(suppliers) == 0 {
		return []*types.Supplier{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (sr *supplierRepo) Update(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) (*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

func (sr *supplierRepo) Delete(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(supplierIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", supplierIDs).
		Delete(&types.Supplier{}).Error
}

func (sr *supplierRepo) GetByIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Supplier
	if len(supplierIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", supplierIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *supplierRepo) ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Supplier
	if err := transaction.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *supplierRepo) SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Supplier, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Supplier
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
