package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type FuelDealRepo interface {
	Create(ctx context.Context, tx *gorm.DB, deals []*types.FuelDeal) ([]*types.FuelDeal, error)
	Delete(ctx context.Context, tx *gorm.DB, dealIDs []uuid.UUID) error
	ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.FuelDeal, error)
}

type fuelDealRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFuelDealRepo(db *gorm.DB, baseLog *logger.Logger) FuelDealRepo {
	repoLog := baseLog.With("repo", "FuelDealRepo")
	return &fuelDealRepo{db: db, log: repoLog}
}

func (fr *fuelDealRepo) Create(ctx context.Context, tx *gorm.DB, deals []*types.FuelDeal) ([]*types.FuelDeal, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(deals) == 0 {
		return []*types.FuelDeal{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

func (fr *fuelDealRepo) Delete(ctx context.Context, tx *gorm.DB, dealIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	if len(dealIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", dealIDs).
		Delete(&types.FuelDeal{}).Error
}

func (fr *fuelDealRepo) ListByContactIDs(ctx context.Context, tx *gorm.DB, contactIDs []uuid.UUID) ([]*types.FuelDeal, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var results []*types.FuelDeal
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
